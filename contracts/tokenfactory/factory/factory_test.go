package factory_test

import (
	"testing"

	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/factory"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	sender = "NbrUYaZgyhSkNoRo9ugRyEMdUZxrhkNaWB"
	denom  = "factory/" + sender + "/tkn"
)

var allVariants = []factory.Variant{
	factory.CosmWasm,
	factory.Kujira,
	factory.Injective,
	factory.Osmosis,
	factory.Juno,
}

// fields decodes flat protobuf message into field number -> raw values.
// Varint values are stored in vs.
type fields struct {
	bs map[protowire.Number][][]byte
	vs map[protowire.Number]uint64
}

func decode(t *testing.T, b []byte) fields {
	res := fields{
		bs: make(map[protowire.Number][][]byte),
		vs: make(map[protowire.Number]uint64),
	}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		require.GreaterOrEqual(t, n, 0, "invalid tag")
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			require.GreaterOrEqual(t, n, 0, "invalid LEN field #%d", num)
			res.bs[num] = append(res.bs[num], v)
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			require.GreaterOrEqual(t, n, 0, "invalid VARINT field #%d", num)
			res.vs[num] = v
			b = b[n:]
		default:
			t.Fatalf("unexpected field type %d", typ)
		}
	}

	return res
}

func (f fields) str(num protowire.Number) string {
	if len(f.bs[num]) == 0 {
		return ""
	}
	return string(f.bs[num][0])
}

func requireCoin(t *testing.T, raw []byte, expDenom, expAmount string) {
	coin := decode(t, raw)
	require.Equal(t, expDenom, coin.str(1))
	require.Equal(t, expAmount, coin.str(2))
}

func TestFromChainID(t *testing.T) {
	for id, exp := range map[string]factory.Variant{
		"juno-1":      factory.Juno,
		"testing":     factory.Juno,
		"osmosis-1":   factory.Osmosis,
		"injective-1": factory.Injective,
		"kujira-1":    factory.Kujira,
		"cosmoshub-4": factory.CosmWasm,
		"":            factory.CosmWasm,
	} {
		require.Equal(t, exp, factory.FromChainID(id), id)
	}
}

func TestParseName(t *testing.T) {
	for _, v := range allVariants {
		require.True(t, factory.IsValid(v))

		parsed, ok := factory.Parse(factory.Name(v))
		require.True(t, ok)
		require.Equal(t, v, parsed)
	}

	_, ok := factory.Parse("terra")
	require.False(t, ok)
	require.False(t, factory.IsValid(0))
	require.False(t, factory.IsValid(factory.Juno+1))
	require.Empty(t, factory.Name(factory.Juno+1))
}

func TestTypeURL(t *testing.T) {
	for v, exp := range map[factory.Variant]string{
		factory.CosmWasm:  "/cosmwasm.tokenfactory.v1beta1.MsgMint",
		factory.Kujira:    "/kujira.denom.MsgMint",
		factory.Injective: "/injective.tokenfactory.v1beta1.MsgMint",
		factory.Osmosis:   "/osmosis.tokenfactory.v1beta1.MsgMint",
		factory.Juno:      "/osmosis.tokenfactory.v1beta1.MsgMint",
	} {
		require.Equal(t, exp, factory.TypeURL(v, factory.MsgMint))
		require.Equal(t, exp, factory.Mint(v, sender, denom, 1).TypeURL)
	}
}

func TestCreateDenom(t *testing.T) {
	for _, v := range allVariants {
		msg := factory.CreateDenom(v, sender, "tkn")
		require.Equal(t, factory.TypeURL(v, factory.MsgCreateDenom), msg.TypeURL)

		f := decode(t, msg.Value)
		require.Len(t, f.bs, 2)
		require.Equal(t, sender, f.str(1))
		require.Equal(t, "tkn", f.str(2))
	}
}

func TestMint(t *testing.T) {
	for _, v := range allVariants {
		msg := factory.Mint(v, sender, denom, 1_000_000_007)

		f := decode(t, msg.Value)
		require.Equal(t, sender, f.str(1))
		require.Len(t, f.bs[2], 1)
		requireCoin(t, f.bs[2][0], denom, "1000000007")

		if v == factory.Kujira || v == factory.Injective {
			require.Equal(t, sender, f.str(3), factory.Name(v))
		} else {
			require.NotContains(t, f.bs, protowire.Number(3), factory.Name(v))
		}
	}
}

func TestBurn(t *testing.T) {
	for _, v := range allVariants {
		msg := factory.Burn(v, sender, denom, 42)
		require.Equal(t, factory.TypeURL(v, factory.MsgBurn), msg.TypeURL)

		f := decode(t, msg.Value)
		require.Equal(t, sender, f.str(1))
		requireCoin(t, f.bs[2][0], denom, "42")

		if v == factory.Osmosis {
			require.Equal(t, sender, f.str(3))
		} else {
			require.NotContains(t, f.bs, protowire.Number(3), factory.Name(v))
		}
	}
}

func TestChangeAdmin(t *testing.T) {
	const admin = "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP"

	for _, v := range allVariants {
		msg := factory.ChangeAdmin(v, sender, denom, admin)
		require.Equal(t, factory.TypeURL(v, factory.MsgChangeAdmin), msg.TypeURL)

		f := decode(t, msg.Value)
		require.Equal(t, sender, f.str(1))
		require.Equal(t, denom, f.str(2))
		require.Equal(t, admin, f.str(3))

		// Revocation sends proto3 default value which is omitted on the wire.
		msg = factory.ChangeAdmin(v, sender, denom, tokenfactoryconst.NullAdmin)
		f = decode(t, msg.Value)
		require.Equal(t, denom, f.str(2))
		require.NotContains(t, f.bs, protowire.Number(3))
	}
}

func TestSetDenomMetadata(t *testing.T) {
	m := factory.NewMetadata(denom, factory.MetadataPrm{
		Symbol:      "TKN",
		Decimals:    6,
		Name:        "Token",
		Description: "Test token",
		URI:         "https://example.org/tkn.json",
	})

	require.Equal(t, denom, m.Base)
	require.Equal(t, "TKN", m.Display)
	require.Equal(t, []factory.DenomUnit{
		{Denom: denom, Exponent: 0, Aliases: []string{}},
		{Denom: "TKN", Exponent: 6, Aliases: []string{}},
	}, m.DenomUnits)

	for _, v := range allVariants {
		msg := factory.SetDenomMetadata(v, sender, m)
		require.Equal(t, factory.TypeURL(v, factory.MsgSetDenomMetadata), msg.TypeURL)

		f := decode(t, msg.Value)
		require.Equal(t, sender, f.str(1))
		require.Len(t, f.bs[2], 1)

		md := decode(t, f.bs[2][0])
		require.Equal(t, "Test token", md.str(1))
		require.Equal(t, denom, md.str(3))
		require.Equal(t, "TKN", md.str(4))
		require.Equal(t, "Token", md.str(5))
		require.Equal(t, "TKN", md.str(6))
		require.Equal(t, "https://example.org/tkn.json", md.str(7))

		require.Len(t, md.bs[2], 2)
		base := decode(t, md.bs[2][0])
		require.Equal(t, denom, base.str(1))
		require.NotContains(t, base.vs, protowire.Number(2))
		display := decode(t, md.bs[2][1])
		require.Equal(t, "TKN", display.str(1))
		require.EqualValues(t, 6, display.vs[2])
	}
}

func TestBankSend(t *testing.T) {
	const to = "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP"

	msg := factory.BankSend(sender, to, denom, 30)
	require.Equal(t, factory.BankSendTypeURL, msg.TypeURL)

	f := decode(t, msg.Value)
	require.Equal(t, sender, f.str(1))
	require.Equal(t, to, f.str(2))
	require.Len(t, f.bs[3], 1)
	requireCoin(t, f.bs[3][0], denom, "30")
}

func TestUnknownVariant(t *testing.T) {
	for _, v := range []factory.Variant{0, factory.Juno + 1} {
		require.Panics(t, func() { factory.CreateDenom(v, sender, "tkn") })
		require.Panics(t, func() { factory.Mint(v, sender, denom, 1) })
		require.Panics(t, func() { factory.Burn(v, sender, denom, 1) })
		require.Panics(t, func() { factory.ChangeAdmin(v, sender, denom, "") })
		require.Panics(t, func() { factory.SetDenomMetadata(v, sender, factory.Metadata{}) })
	}
}

func TestFormatAmount(t *testing.T) {
	for n, exp := range map[int]string{
		0:                   "0",
		7:                   "7",
		10:                  "10",
		1_000_000:           "1000000",
		9223372036854775807: "9223372036854775807",
	} {
		require.Equal(t, exp, factory.FormatAmount(n))
	}

	require.Panics(t, func() { factory.FormatAmount(-1) })
}

func TestSubdenom(t *testing.T) {
	require.Equal(t, "tkn", factory.Subdenom("TKN"))
	require.Equal(t, "ukuji-2", factory.Subdenom("uKUJI-2"))
	require.Equal(t, "factory/creator/tkn", factory.Denom("creator", factory.Subdenom("Tkn")))
}
