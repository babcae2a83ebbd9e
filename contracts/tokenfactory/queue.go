package tokenfactory

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/tokenfactory-contract/common"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/factory"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
)

const (
	initialBalancePrefix   = 'i'
	initialBalanceCountKey = 'l'
)

// enqueueInitialBalances stores balances in the provided order and requests
// the aggregate mint. Nothing is dispatched for empty list.
func enqueueInitialBalances(ctx storage.Context, v factory.Variant, self, denom string, balances []Balance) {
	if len(balances) == 0 {
		return
	}

	limit := maxAmount()
	total := 0

	for i := 0; i < len(balances); i++ { //nolint:intrange // Not supported by NeoGo
		b := balances[i]
		checkAddress(b.Recipient)
		checkAmount(b.Amount)

		if b.Amount > limit-total {
			panic(tokenfactoryconst.ErrOverflow + ": initial balances total")
		}
		total += b.Amount

		common.SetSerialized(ctx, initialBalanceKey(i), b)
	}

	storage.Put(ctx, initialBalanceCountKey, len(balances))

	dispatch(tokenfactoryconst.InitialBalancesReplyID, true, factory.Mint(v, self, denom, total))
}

// payInitialBalances pays out all queued initial balances in order and
// accounts their sum as a single mint.
func payInitialBalances(ctx storage.Context) {
	n := storage.Get(ctx, initialBalanceCountKey)
	if n == nil {
		panic(tokenfactoryconst.ErrNoInitialBalances)
	}

	count := n.(int)
	balances := []Balance{}
	total := 0

	for i := 0; i < count; i++ { //nolint:intrange // Not supported by NeoGo
		key := initialBalanceKey(i)
		b := std.Deserialize(storage.Get(ctx, key).([]byte)).(Balance)
		storage.Delete(ctx, key)

		balances = append(balances, b)
		total += b.Amount
	}
	storage.Delete(ctx, initialBalanceCountKey)

	recordMint(ctx, total)

	denom := getDenom(ctx)
	for i := 0; i < len(balances); i++ { //nolint:intrange // Not supported by NeoGo
		payout(balances[i].Recipient, denom, balances[i].Amount)
	}
}

func initialBalanceKey(i int) []byte {
	return append([]byte{initialBalancePrefix}, common.ToFixedWidth64(i)...)
}
