package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// ToFixedWidth64 converts non-negative n to the 8-byte big-endian
// representation. Storage keys with such suffixes are iterated by Find in
// ascending numeric order.
func ToFixedWidth64(n int) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(n & 0xFF)
		n = n >> 8
	}
	return b
}
