package factory

import (
	"github.com/nspcc-dev/tokenfactory-contract/internal/proto"
)

type (
	// MetadataPrm groups user-supplied denom metadata.
	MetadataPrm struct {
		Symbol      string
		Decimals    int
		Name        string
		Description string
		URI         string
	}

	// DenomUnit is a cosmos.bank.v1beta1.DenomUnit.
	DenomUnit struct {
		Denom    string
		Exponent int
		Aliases  []string
	}

	// Metadata is a cosmos.bank.v1beta1.Metadata attached to the denom.
	Metadata struct {
		Description string
		DenomUnits  []DenomUnit
		Base        string
		Display     string
		Name        string
		Symbol      string
		URI         string
	}
)

// NewMetadata makes bank metadata of denom. Denom itself is the base unit
// with zero exponent, the symbol is the display unit with prm.Decimals
// exponent.
func NewMetadata(denom string, prm MetadataPrm) Metadata {
	return Metadata{
		Description: prm.Description,
		DenomUnits: []DenomUnit{
			DenomUnit{Denom: denom, Exponent: 0, Aliases: []string{}},
			DenomUnit{Denom: prm.Symbol, Exponent: prm.Decimals, Aliases: []string{}},
		},
		Base:    denom,
		Display: prm.Symbol,
		Name:    prm.Name,
		Symbol:  prm.Symbol,
		URI:     prm.URI,
	}
}

// Subdenom returns sub-denomination derived from the token symbol.
func Subdenom(symbol string) string {
	return lowerASCII(symbol)
}

// Denom returns full factory denom created by creator.
func Denom(creator, subdenom string) string {
	return "factory/" + creator + "/" + subdenom
}

func encodeMetadata(m Metadata) []byte {
	b := proto.AppendString([]byte{}, 1, m.Description)
	for i := 0; i < len(m.DenomUnits); i++ { //nolint:intrange // Not supported by NeoGo
		b = proto.AppendLEN(b, 2, encodeDenomUnit(m.DenomUnits[i]))
	}
	b = proto.AppendString(b, 3, m.Base)
	b = proto.AppendString(b, 4, m.Display)
	b = proto.AppendString(b, 5, m.Name)
	b = proto.AppendString(b, 6, m.Symbol)
	return proto.AppendString(b, 7, m.URI)
}

func encodeDenomUnit(u DenomUnit) []byte {
	b := proto.AppendString([]byte{}, 1, u.Denom)
	b = proto.AppendUint(b, 2, uint64(u.Exponent))
	for i := 0; i < len(u.Aliases); i++ { //nolint:intrange // Not supported by NeoGo
		b = proto.AppendLEN(b, 3, []byte(u.Aliases[i]))
	}
	return b
}
