package tokenfactory

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/tokenfactory-contract/common"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
)

const (
	mintCounterKey    = 'c'
	burnCounterKey    = 'k'
	pendingMintPrefix = 'p'
	pendingBurnPrefix = 'q'
)

// Reply method delivers the result of the dispatched message with the given
// reply id from the token factory. On success, the pending operation is
// completed: minted tokens are paid out and accounted, burned tokens are
// accounted. On failure, the error details are thrown and the pending
// operation stays untouched. It can be invoked only by Alphabet nodes.
func Reply(id int, success bool, details []byte) {
	common.CheckAlphabetWitness()

	ctx := storage.GetContext()

	if id == tokenfactoryconst.InitialBalancesReplyID {
		checkSuccess(success, details)
		payInitialBalances(ctx)
	} else if id >= tokenfactoryconst.BurnReplyIDOffset {
		checkAllocated(ctx, id, burnCounterKey)
		checkSuccess(success, details)
		completeBurn(ctx, id)
	} else if id >= tokenfactoryconst.MintReplyIDOffset {
		checkAllocated(ctx, id, mintCounterKey)
		checkSuccess(success, details)
		completeMint(ctx, id)
	} else {
		panic(tokenfactoryconst.ErrUnknownReplyID + " " + std.Itoa10(id))
	}
}

// checkAllocated panics if id is not issued yet by the counter of its range.
// Counters never exceed the 64-bit key width, so ids of pending operations are
// never truncated.
func checkAllocated(ctx storage.Context, id int, counterKey any) {
	if id >= storage.Get(ctx, counterKey).(int) {
		panic(tokenfactoryconst.ErrUnknownReplyID + " " + std.Itoa10(id))
	}
}

func initReplyCounters(ctx storage.Context) {
	storage.Put(ctx, mintCounterKey, tokenfactoryconst.MintReplyIDOffset)
	storage.Put(ctx, burnCounterKey, tokenfactoryconst.BurnReplyIDOffset)
}

func allocateMintID(ctx storage.Context) int {
	return allocateID(ctx, mintCounterKey)
}

func allocateBurnID(ctx storage.Context) int {
	return allocateID(ctx, burnCounterKey)
}

func allocateID(ctx storage.Context, counterKey any) int {
	id := storage.Get(ctx, counterKey).(int)
	storage.Put(ctx, counterKey, id+1)
	return id
}

func pendingMintKey(id int) []byte {
	return append([]byte{pendingMintPrefix}, common.ToFixedWidth64(id)...)
}

func pendingBurnKey(id int) []byte {
	return append([]byte{pendingBurnPrefix}, common.ToFixedWidth64(id)...)
}

func checkSuccess(success bool, details []byte) {
	if !success {
		panic(tokenfactoryconst.ErrUpstreamFailure + ": " + string(details))
	}
}

func completeMint(ctx storage.Context, id int) {
	key := pendingMintKey(id)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(tokenfactoryconst.ErrMissingState + ": no pending mint " + std.Itoa10(id))
	}

	pending := std.Deserialize(data.([]byte)).(Balance)
	storage.Delete(ctx, key)

	recordMint(ctx, pending.Amount)
	payout(pending.Recipient, getDenom(ctx), pending.Amount)
}

func completeBurn(ctx storage.Context, id int) {
	key := pendingBurnKey(id)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(tokenfactoryconst.ErrMissingState + ": no pending burn " + std.Itoa10(id))
	}

	amount := std.Deserialize(data.([]byte)).(int)
	storage.Delete(ctx, key)

	recordBurn(ctx, amount)
}
