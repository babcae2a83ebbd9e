package tokenfactory

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/tokenfactory-contract/common"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
)

// Stats contains amounts of tokens minted and burned by the token factory on
// behalf of the contract. Both only grow, so the circulating supply is
// Minted - Burned.
type Stats struct {
	Minted int
	Burned int
}

const statsKey = 's'

func initLedger(ctx storage.Context) {
	common.SetSerialized(ctx, statsKey, Stats{})
}

func getStats(ctx storage.Context) Stats {
	return std.Deserialize(storage.Get(ctx, statsKey).([]byte)).(Stats)
}

func recordMint(ctx storage.Context, amount int) {
	stats := getStats(ctx)
	stats.Minted = addTotal(stats.Minted, amount, "minted")
	common.SetSerialized(ctx, statsKey, stats)
}

func recordBurn(ctx storage.Context, amount int) {
	stats := getStats(ctx)
	stats.Burned = addTotal(stats.Burned, amount, "burned")
	common.SetSerialized(ctx, statsKey, stats)
}

// addTotal adds amount to total bounded by the biggest VM integer.
func addTotal(total, amount int, name string) int {
	return addLimited(total, amount, std.Atoi(tokenfactoryconst.MaxTotalString, 10), name)
}

// addLimited adds amount to total. Sum is compared without being computed since
// VM faults on integers wider than 32 bytes.
func addLimited(total, amount, limit int, name string) int {
	if amount > limit-total {
		panic(tokenfactoryconst.ErrOverflow + ": " + name + " total")
	}
	return total + amount
}
