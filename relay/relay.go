package relay

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/factory"
	tokenfactoryrpc "github.com/nspcc-dev/tokenfactory-contract/rpc/tokenfactory"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Executor executes messages on the chain hosting the token factory.
type Executor interface {
	// Execute submits msg to the token factory chain on behalf of the Token
	// Factory contract and waits for its execution. Returned data is an
	// execution result which is passed to the contract in success reply.
	// Execution failure must be reported as an error, its text is passed to
	// the contract in failure reply.
	Execute(ctx context.Context, msg factory.Message) ([]byte, error)
}

// Replier delivers results of the executed messages to the Token Factory
// contract. [tokenfactoryrpc.Contract] implements Replier.
type Replier interface {
	// Reply sends transaction invoking `reply` method of the contract.
	Reply(id *big.Int, success bool, details []byte) (util.Uint256, uint32, error)
}

// Prm groups parameters of the Relay.
type Prm struct {
	// Logger is used to write messages. Optional: no-op logger is used by
	// default.
	Logger *zap.Logger

	// Contract is an address of the Token Factory contract to serve. Events
	// of other contracts are ignored.
	Contract util.Uint160

	// Executor executes dispatched messages. Required.
	Executor Executor

	// Replier delivers replies to the contract. Required.
	Replier Replier
}

// Relay transfers messages dispatched by the Token Factory contract to the
// token factory chain and delivers results back when the contract requests
// it.
type Relay struct {
	log      *zap.Logger
	contract util.Uint160
	executor Executor
	replier  Replier
}

// dispatchEventName is a name of the notification with outbound messages.
const dispatchEventName = "Dispatch"

// New constructs Relay from the given parameters.
func New(prm Prm) (*Relay, error) {
	switch {
	case prm.Executor == nil:
		return nil, errors.New("missing executor")
	case prm.Replier == nil:
		return nil, errors.New("missing replier")
	}

	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &Relay{
		log:      l.With(zap.Stringer("contract", prm.Contract)),
		contract: prm.Contract,
		executor: prm.Executor,
		replier:  prm.Replier,
	}, nil
}

// Run handles application logs from the channel until it is closed or the
// context is done. Errors of particular logs are logged and don't stop the
// processing.
func (r *Relay) Run(ctx context.Context, logs <-chan *result.ApplicationLog) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case log, ok := <-logs:
			if !ok {
				r.log.Info("application log channel closed, stopping")
				return nil
			}

			err := r.HandleApplicationLog(ctx, log)
			if err != nil {
				r.log.Error("failed to handle application log", zap.Error(err))
			}
		}
	}
}

// HandleApplicationLog executes all messages dispatched by the served contract
// in the successful executions of the given log in the order of emission.
// Replies are sent for messages requesting them. Failures of messages not
// requesting replies are only logged. Failure to decode or handle an event
// doesn't stop processing of the subsequent ones, all such errors are
// returned combined.
func (r *Relay) HandleApplicationLog(ctx context.Context, log *result.ApplicationLog) error {
	if log == nil {
		return errors.New("nil application log")
	}

	var res error

	for i, ex := range log.Executions {
		if ex.VMState != vmstate.Halt {
			continue
		}

		for j, e := range ex.Events {
			if e.ScriptHash != r.contract || e.Name != dispatchEventName {
				continue
			}

			var ev tokenfactoryrpc.DispatchEvent

			err := ev.FromStackItem(e.Item)
			if err != nil {
				err = fmt.Errorf("decode %s event (execution #%d, event #%d): %w", dispatchEventName, i, j, err)
			} else if err = r.handleDispatch(ctx, &ev); err != nil {
				err = fmt.Errorf("handle %s event (execution #%d, event #%d): %w", dispatchEventName, i, j, err)
			}

			if err != nil {
				r.log.Error("failed to process event, continue", zap.Stringer("tx", log.Container), zap.Error(err))
				res = multierr.Append(res, err)
			}
		}
	}

	return res
}

func (r *Relay) handleDispatch(ctx context.Context, ev *tokenfactoryrpc.DispatchEvent) error {
	l := r.log.With(zap.String("type", ev.TypeURL))
	if ev.ReplyAlways {
		l = l.With(zap.Stringer("reply id", ev.ReplyID))
	}

	s, err := Summarize(ev.TypeURL, ev.Value)
	if err != nil {
		// Message is still passed to the token factory which is the only judge.
		l.Warn("failed to decode dispatched message", zap.Error(err))
	} else {
		l = l.With(s.Fields()...)
	}

	data, err := r.executor.Execute(ctx, factory.Message{TypeURL: ev.TypeURL, Value: ev.Value})
	if !ev.ReplyAlways {
		if err != nil {
			l.Error("dispatched message failed", zap.Error(err))
		} else {
			l.Info("dispatched message executed")
		}
		return nil
	}

	success := err == nil
	details := data
	if !success {
		l.Warn("dispatched message failed, replying with failure", zap.Error(err))
		details = []byte(err.Error())
	}

	txHash, vub, err := r.replier.Reply(ev.ReplyID, success, details)
	if err != nil {
		return fmt.Errorf("send reply %s: %w", ev.ReplyID, err)
	}

	l.Info("reply sent", zap.Bool("success", success),
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	return nil
}
