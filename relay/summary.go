package relay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/factory"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protowire"
)

// Summary contains the most important fields of the dispatched message.
// Fields not present in the message are empty.
type Summary struct {
	Sender    string
	Recipient string
	Denom     string
	Amount    string
	NewAdmin  string
}

// Fields returns non-empty fields of s for structured logging.
func (s Summary) Fields() []zap.Field {
	var res []zap.Field
	for _, f := range []struct {
		key, val string
	}{
		{"sender", s.Sender},
		{"recipient", s.Recipient},
		{"denom", s.Denom},
		{"amount", s.Amount},
		{"new admin", s.NewAdmin},
	} {
		if f.val != "" {
			res = append(res, zap.String(f.key, f.val))
		}
	}
	return res
}

// Summarize decodes message of the given type and returns its summary.
// Unknown message types produce summary with sender only.
func Summarize(typeURL string, value []byte) (Summary, error) {
	var s Summary

	fs, err := decodeLEN(value)
	if err != nil {
		return s, err
	}

	s.Sender = string(fs[1])

	var coin []byte
	switch {
	case typeURL == factory.BankSendTypeURL:
		s.Recipient = string(fs[2])
		coin = fs[3]
	case strings.HasSuffix(typeURL, "."+factory.MsgMint), strings.HasSuffix(typeURL, "."+factory.MsgBurn):
		coin = fs[2]
	case strings.HasSuffix(typeURL, "."+factory.MsgChangeAdmin):
		s.Denom = string(fs[2])
		s.NewAdmin = string(fs[3])
	default:
		return s, nil
	}

	if coin != nil {
		cfs, err := decodeLEN(coin)
		if err != nil {
			return s, fmt.Errorf("coin: %w", err)
		}
		s.Denom = string(cfs[1])
		s.Amount = string(cfs[2])
	}

	return s, nil
}

// decodeLEN returns first values of LEN fields of the flat message by field
// numbers. Fields of other types are skipped.
func decodeLEN(b []byte) (map[protowire.Number][]byte, error) {
	res := make(map[protowire.Number][]byte)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("field #%d: %w", num, protowire.ParseError(n))
		}

		if typ == protowire.BytesType {
			if _, ok := res[num]; !ok {
				v, _ := protowire.ConsumeBytes(b)
				res[num] = v
			}
		}
		b = b[n:]
	}

	if len(res) == 0 {
		return nil, errors.New("no fields")
	}

	return res, nil
}
