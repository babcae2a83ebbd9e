package tokenfactory

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/lib/address"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/tokenfactory-contract/common"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/factory"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
)

type (
	// Balance is an amount of tokens owned by recipient. Initial balances and
	// pending mints are stored in this form.
	Balance struct {
		Recipient interop.Hash160
		Amount    int
	}

	// Settings is a token management configuration.
	Settings struct {
		Manager interop.Hash160
	}

	// DenomInfo describes the managed denom.
	DenomInfo struct {
		Denom    string
		Metadata factory.Metadata
		Minted   int
		Burned   int
	}
)

const (
	versionKey  = 'v'
	managerKey  = 'm'
	variantKey  = 'f'
	denomKey    = 'd'
	metadataKey = 'x'

	// Exponent of the bank denom unit is uint32.
	maxDecimals = 1<<32 - 1

	// noReply is a reply id of dispatched messages that don't need a reply.
	noReply = 0

	dispatchEvent = "Dispatch"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		storage.Put(ctx, versionKey, common.Version)
		return
	}

	args := data.(struct {
		manager         interop.Hash160
		variant         string
		chainID         string
		initialBalances []Balance
		metadata        factory.MetadataPrm
	})

	manager := args.manager
	if manager == nil {
		manager = runtime.GetScriptContainer().Sender
	}
	checkAddress(manager)

	v := factory.FromChainID(args.chainID)
	if len(args.variant) != 0 {
		var ok bool
		v, ok = factory.Parse(args.variant)
		if !ok {
			panic(tokenfactoryconst.ErrUnknownFactory + ": " + args.variant)
		}
	}

	checkMetadata(args.metadata)

	self := selfAddress()
	subdenom := factory.Subdenom(args.metadata.Symbol)
	denom := factory.Denom(self, subdenom)
	metadata := factory.NewMetadata(denom, args.metadata)

	storage.Put(ctx, versionKey, common.Version)
	storage.Put(ctx, managerKey, manager)
	storage.Put(ctx, variantKey, v)
	storage.Put(ctx, denomKey, denom)
	common.SetSerialized(ctx, metadataKey, metadata)
	initLedger(ctx)
	initReplyCounters(ctx)

	dispatch(noReply, false, factory.CreateDenom(v, self, subdenom))
	dispatch(noReply, false, factory.SetDenomMetadata(v, self, metadata))

	enqueueInitialBalances(ctx, v, self, denom, args.initialBalances)

	runtime.Log("tokenfactory contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("tokenfactory contract updated")
}

// Mint method requests the token factory to mint amount of tokens and pays
// them to the recipient once the token factory confirms the mint. It can be
// invoked only by the manager.
//
// Produces Dispatch notification with a fresh reply id.
func Mint(recipient interop.Hash160, amount int) {
	ctx := storage.GetContext()
	checkManager(ctx)
	checkAddress(recipient)
	checkAmount(amount)

	id := allocateMintID(ctx)
	common.SetSerialized(ctx, pendingMintKey(id), Balance{
		Recipient: recipient,
		Amount:    amount,
	})

	dispatch(id, true, factory.Mint(getVariant(ctx), selfAddress(), getDenom(ctx), amount))
}

// Burn method requests the token factory to burn amount of tokens owned by the
// contract. Burned amount is accounted after confirmation. It can be invoked
// only by the manager.
//
// Produces Dispatch notification with a fresh reply id.
func Burn(amount int) {
	ctx := storage.GetContext()
	checkManager(ctx)
	checkAmount(amount)

	id := allocateBurnID(ctx)
	common.SetSerialized(ctx, pendingBurnKey(id), amount)

	dispatch(id, true, factory.Burn(getVariant(ctx), selfAddress(), getDenom(ctx), amount))
}

// SetManager method transfers token management to the new manager. It can be
// invoked only by the current manager.
func SetManager(manager interop.Hash160) {
	ctx := storage.GetContext()
	checkManager(ctx)
	checkAddress(manager)

	storage.Put(ctx, managerKey, manager)
}

// SetDenomMetadata method replaces denom metadata both in the contract and in
// the token factory. Denom itself is never changed. It can be invoked only by
// the manager.
func SetDenomMetadata(symbol string, decimals int, name, description, uri string) {
	ctx := storage.GetContext()
	checkManager(ctx)

	prm := factory.MetadataPrm{
		Symbol:      symbol,
		Decimals:    decimals,
		Name:        name,
		Description: description,
		URI:         uri,
	}
	checkMetadata(prm)

	metadata := factory.NewMetadata(getDenom(ctx), prm)
	common.SetSerialized(ctx, metadataKey, metadata)

	dispatch(noReply, false, factory.SetDenomMetadata(getVariant(ctx), selfAddress(), metadata))
}

// SetDenomAdmin method passes denom administration in the token factory to the
// admin. The contract loses control over the denom after that. It can be
// invoked only by the manager.
func SetDenomAdmin(admin interop.Hash160) {
	ctx := storage.GetContext()
	checkManager(ctx)
	checkAddress(admin)

	changeAdmin(ctx, address.FromHash160(admin))
}

// RemoveDenomAdmin method revokes denom administration in the token factory,
// so nobody can mint or burn tokens anymore. It can be invoked only by the
// manager.
func RemoveDenomAdmin() {
	ctx := storage.GetContext()
	checkManager(ctx)

	changeAdmin(ctx, tokenfactoryconst.NullAdmin)
}

// Config method returns token management configuration.
func Config() Settings {
	ctx := storage.GetReadOnlyContext()
	return Settings{
		Manager: storage.Get(ctx, managerKey).(interop.Hash160),
	}
}

// Info method returns denom, its metadata and accumulated minted and burned
// amounts.
func Info() DenomInfo {
	ctx := storage.GetReadOnlyContext()
	stats := getStats(ctx)
	return DenomInfo{
		Denom:    getDenom(ctx),
		Metadata: std.Deserialize(storage.Get(ctx, metadataKey).([]byte)).(factory.Metadata),
		Minted:   stats.Minted,
		Burned:   stats.Burned,
	}
}

// InitialBalances method returns iterator over initial balances that are not
// paid yet. Values are Balance structures in the order they were provided on
// deployment.
func InitialBalances() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{initialBalancePrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, versionKey).(int)
}

func changeAdmin(ctx storage.Context, admin string) {
	dispatch(noReply, false,
		factory.ChangeAdmin(getVariant(ctx), selfAddress(), getDenom(ctx), admin))
}

// dispatch publishes msg for the token factory relay. Reply is requested only
// if replyAlways is set, replyID is meaningless otherwise.
func dispatch(replyID int, replyAlways bool, msg factory.Message) {
	runtime.Notify(dispatchEvent, replyID, replyAlways, msg.TypeURL, msg.Value)
}

func payout(recipient interop.Hash160, denom string, amount int) {
	dispatch(noReply, false,
		factory.BankSend(selfAddress(), address.FromHash160(recipient), denom, amount))
}

func selfAddress() string {
	return address.FromHash160(runtime.GetExecutingScriptHash())
}

func getVariant(ctx storage.Context) factory.Variant {
	return factory.Variant(storage.Get(ctx, variantKey).(int))
}

func getDenom(ctx storage.Context) string {
	return storage.Get(ctx, denomKey).(string)
}

func checkManager(ctx storage.Context) {
	common.CheckManagerWitness(storage.Get(ctx, managerKey).([]byte))
}

func checkAddress(addr interop.Hash160) {
	if len(addr) != interop.Hash160Len {
		panic(tokenfactoryconst.ErrInvalidAddress + ": length " + std.Itoa10(len(addr)))
	}
}

func checkAmount(amount int) {
	if amount <= 0 || amount > maxAmount() {
		panic(tokenfactoryconst.ErrInvalidAmount + ": " + std.Itoa10(amount))
	}
}

func checkMetadata(prm factory.MetadataPrm) {
	if len(prm.Symbol) == 0 {
		panic(tokenfactoryconst.ErrInvalidMetadata + ": empty symbol")
	}
	if prm.Decimals < 0 || prm.Decimals > maxDecimals {
		panic(tokenfactoryconst.ErrInvalidMetadata + ": decimals " + std.Itoa10(prm.Decimals))
	}
}

func maxAmount() int {
	return std.Atoi(tokenfactoryconst.MaxAmountString, 10)
}
