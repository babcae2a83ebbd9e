package tokenfactoryconst

const (
	// InitialBalancesReplyID is a correlation id reserved for the aggregate
	// mint of the initial balances.
	InitialBalancesReplyID = 0
	// MintReplyIDOffset is the first correlation id used for manager mints.
	MintReplyIDOffset = 1_000_000
	// BurnReplyIDOffset is the first correlation id used for burns. Mint and
	// burn ranges never intersect.
	BurnReplyIDOffset = 1 << 62

	// NullAdmin is an admin address value meaning "no admin" for the token
	// factory.
	NullAdmin = ""

	// MaxAmountString is a decimal representation of the biggest amount that
	// can be passed to the token factory in a single message (2^128-1).
	MaxAmountString = "340282366920938463463374607431768211455"
	// MaxTotalString is a decimal representation of the biggest accumulated
	// minted or burned value (2^255-1, the biggest VM integer).
	MaxTotalString = "57896044618658097711785492504343953926634992332820282019728792003956564819967"
)

// Exceptions thrown by the contract. Each one is a prefix, details may follow
// after ": ".
const (
	ErrNotAuthorized     = "not authorized"
	ErrOverflow          = "overflow"
	ErrUpstreamFailure   = "upstream failure"
	ErrMissingState      = "missing state"
	ErrInvalidAddress    = "invalid address"
	ErrInvalidAmount     = "invalid amount"
	ErrInvalidMetadata   = "invalid metadata"
	ErrUnknownFactory    = "unknown token factory"
	ErrUnknownReplyID    = ErrNotAuthorized + ": unrecognized reply id"
	ErrNoInitialBalances = ErrMissingState + ": no queued initial balances"
)
