package factory

import (
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
	"github.com/nspcc-dev/tokenfactory-contract/internal/proto"
)

const (
	errUnknownVariant = tokenfactoryconst.ErrUnknownFactory + ": unsupported variant"
	errNegativeAmount = tokenfactoryconst.ErrInvalidAmount + ": negative"
)

// Message type names shared by all variants.
const (
	MsgCreateDenom      = "MsgCreateDenom"
	MsgMint             = "MsgMint"
	MsgBurn             = "MsgBurn"
	MsgChangeAdmin      = "MsgChangeAdmin"
	MsgSetDenomMetadata = "MsgSetDenomMetadata"

	// BankSendTypeURL is a type URL of the bank transfer message. It doesn't
	// depend on the variant.
	BankSendTypeURL = "/cosmos.bank.v1beta1.MsgSend"
)

// Message is an outbound instruction for the token factory chain: a protobuf
// Any with binary message body.
type Message struct {
	TypeURL string
	Value   []byte
}

// TypeURL returns type URL of the named message for v. It panics if v is not
// supported.
func TypeURL(v Variant, msg string) string {
	return typeURLPrefix(v) + msg
}

// CreateDenom builds a message creating factory/<sender>/<subdenom> denom.
func CreateDenom(v Variant, sender, subdenom string) Message {
	url := TypeURL(v, MsgCreateDenom)

	b := proto.AppendString([]byte{}, 1, sender)
	b = proto.AppendString(b, 2, subdenom)

	return Message{TypeURL: url, Value: b}
}

// Mint builds a message minting amount of denom to sender.
func Mint(v Variant, sender, denom string, amount int) Message {
	url := TypeURL(v, MsgMint)

	b := proto.AppendString([]byte{}, 1, sender)
	b = proto.AppendLEN(b, 2, encodeCoin(denom, amount))
	if v == Kujira || v == Injective {
		b = proto.AppendString(b, 3, sender)
	}

	return Message{TypeURL: url, Value: b}
}

// Burn builds a message burning amount of denom from sender.
func Burn(v Variant, sender, denom string, amount int) Message {
	url := TypeURL(v, MsgBurn)

	b := proto.AppendString([]byte{}, 1, sender)
	b = proto.AppendLEN(b, 2, encodeCoin(denom, amount))
	if v == Osmosis {
		b = proto.AppendString(b, 3, sender)
	}

	return Message{TypeURL: url, Value: b}
}

// ChangeAdmin builds a message transferring denom administration to newAdmin.
// Empty newAdmin (see [tokenfactoryconst.NullAdmin]) revokes administration.
func ChangeAdmin(v Variant, sender, denom, newAdmin string) Message {
	url := TypeURL(v, MsgChangeAdmin)

	b := proto.AppendString([]byte{}, 1, sender)
	b = proto.AppendString(b, 2, denom)
	b = proto.AppendString(b, 3, newAdmin)

	return Message{TypeURL: url, Value: b}
}

// SetDenomMetadata builds a message replacing bank metadata of the denom.
func SetDenomMetadata(v Variant, sender string, m Metadata) Message {
	url := TypeURL(v, MsgSetDenomMetadata)

	b := proto.AppendString([]byte{}, 1, sender)
	b = proto.AppendLEN(b, 2, encodeMetadata(m))

	return Message{TypeURL: url, Value: b}
}

// BankSend builds a bank transfer of amount of denom.
func BankSend(from, to, denom string, amount int) Message {
	b := proto.AppendString([]byte{}, 1, from)
	b = proto.AppendString(b, 2, to)
	b = proto.AppendLEN(b, 3, encodeCoin(denom, amount))

	return Message{TypeURL: BankSendTypeURL, Value: b}
}

func encodeCoin(denom string, amount int) []byte {
	b := proto.AppendString([]byte{}, 1, denom)
	return proto.AppendString(b, 2, FormatAmount(amount))
}
