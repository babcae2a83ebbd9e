package relay_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/factory"
	"github.com/nspcc-dev/tokenfactory-contract/relay"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

const (
	self  = "NbrUYaZgyhSkNoRo9ugRyEMdUZxrhkNaWB"
	denom = "factory/" + self + "/tkn"
)

var contractHash = util.Uint160{1, 2, 3}

type executor struct {
	msgs []factory.Message
	fail map[string]error
}

func (e *executor) Execute(_ context.Context, msg factory.Message) ([]byte, error) {
	e.msgs = append(e.msgs, msg)
	if err := e.fail[msg.TypeURL]; err != nil {
		return nil, err
	}
	return []byte("ok"), nil
}

type reply struct {
	id      int64
	success bool
	details string
}

type replier struct {
	replies []reply
	err     error
}

func (r *replier) Reply(id *big.Int, success bool, details []byte) (util.Uint256, uint32, error) {
	if r.err != nil {
		return util.Uint256{}, 0, r.err
	}
	r.replies = append(r.replies, reply{id.Int64(), success, string(details)})
	return util.Uint256{byte(len(r.replies))}, 100, nil
}

func dispatchEvent(contract util.Uint160, id int64, replyAlways bool, msg factory.Message) state.NotificationEvent {
	return state.NotificationEvent{
		ScriptHash: contract,
		Name:       "Dispatch",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(id),
			stackitem.NewBool(replyAlways),
			stackitem.Make(msg.TypeURL),
			stackitem.NewByteArray(msg.Value),
		}),
	}
}

func appLog(st vmstate.State, events ...state.NotificationEvent) *result.ApplicationLog {
	return &result.ApplicationLog{
		Container: util.Uint256{0xFF},
		Executions: []state.Execution{{
			Trigger: trigger.Application,
			VMState: st,
			Events:  events,
		}},
	}
}

func newRelay(t *testing.T, e relay.Executor, r relay.Replier) *relay.Relay {
	rl, err := relay.New(relay.Prm{
		Logger:   zaptest.NewLogger(t),
		Contract: contractHash,
		Executor: e,
		Replier:  r,
	})
	require.NoError(t, err)
	return rl
}

func TestNew(t *testing.T) {
	_, err := relay.New(relay.Prm{Replier: new(replier)})
	require.Error(t, err)

	_, err = relay.New(relay.Prm{Executor: new(executor)})
	require.Error(t, err)

	_, err = relay.New(relay.Prm{Executor: new(executor), Replier: new(replier)})
	require.NoError(t, err)
}

func TestHandleApplicationLog(t *testing.T) {
	const recipient = "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP"

	var (
		createDenom = factory.CreateDenom(factory.Osmosis, self, "tkn")
		mint        = factory.Mint(factory.Osmosis, self, denom, 30)
		send        = factory.BankSend(self, recipient, denom, 30)
		burn        = factory.Burn(factory.Osmosis, self, denom, 5)
	)

	e := &executor{fail: map[string]error{
		burn.TypeURL: errors.New("insufficient funds"),
	}}
	r := new(replier)
	rl := newRelay(t, e, r)

	err := rl.HandleApplicationLog(context.Background(), appLog(vmstate.Halt,
		dispatchEvent(contractHash, 0, false, createDenom),
		dispatchEvent(util.Uint160{9}, 0, false, send),
		dispatchEvent(contractHash, 0, true, mint),
		dispatchEvent(contractHash, 1_000_000, false, send),
		dispatchEvent(contractHash, 1<<62, true, burn),
	))
	require.NoError(t, err)

	require.Equal(t, []factory.Message{createDenom, mint, send, burn}, e.msgs)
	require.Equal(t, []reply{
		{id: 0, success: true, details: "ok"},
		{id: 1 << 62, success: false, details: "insufficient funds"},
	}, r.replies)

	t.Run("faulted execution", func(t *testing.T) {
		e := new(executor)
		rl := newRelay(t, e, new(replier))

		err := rl.HandleApplicationLog(context.Background(), appLog(vmstate.Fault,
			dispatchEvent(contractHash, 0, false, createDenom)))
		require.NoError(t, err)
		require.Empty(t, e.msgs)
	})

	t.Run("reply failure", func(t *testing.T) {
		rl := newRelay(t, new(executor), &replier{err: errors.New("connection lost")})

		err := rl.HandleApplicationLog(context.Background(), appLog(vmstate.Halt,
			dispatchEvent(contractHash, 1_000_000, true, mint)))
		require.ErrorContains(t, err, "connection lost")
	})

	t.Run("invalid event", func(t *testing.T) {
		rl := newRelay(t, new(executor), new(replier))

		ev := dispatchEvent(contractHash, 0, false, mint)
		ev.Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})

		err := rl.HandleApplicationLog(context.Background(), appLog(vmstate.Halt, ev))
		require.Error(t, err)
	})

	t.Run("failures don't stop processing", func(t *testing.T) {
		e := new(executor)
		rl := newRelay(t, e, &replier{err: errors.New("connection lost")})

		invalid := dispatchEvent(contractHash, 0, false, mint)
		invalid.Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})

		err := rl.HandleApplicationLog(context.Background(), appLog(vmstate.Halt,
			dispatchEvent(contractHash, 0, false, createDenom),
			invalid,
			dispatchEvent(contractHash, 0, true, mint),
			dispatchEvent(contractHash, 0, false, send),
		))
		require.ErrorContains(t, err, "decode Dispatch event (execution #0, event #1)")
		require.ErrorContains(t, err, "connection lost")
		require.Len(t, multierr.Errors(err), 2)

		require.Equal(t, []factory.Message{createDenom, mint, send}, e.msgs)
	})

	require.Error(t, rl.HandleApplicationLog(context.Background(), nil))
}

func TestRun(t *testing.T) {
	e := new(executor)
	rl := newRelay(t, e, new(replier))

	logs := make(chan *result.ApplicationLog, 2)
	logs <- appLog(vmstate.Halt, dispatchEvent(contractHash, 0, false, factory.CreateDenom(factory.Juno, self, "tkn")))
	logs <- nil // logged and skipped
	close(logs)

	require.NoError(t, rl.Run(context.Background(), logs))
	require.Len(t, e.msgs, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, rl.Run(ctx, make(chan *result.ApplicationLog)), context.DeadlineExceeded)
}
