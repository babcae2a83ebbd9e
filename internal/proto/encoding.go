// Package proto provides minimal protobuf encoding usable both in NeoVM and in
// regular Go programs.
package proto

// MaxFieldNumber is a maximum field number according to
// https://protobuf.dev/programming-guides/proto3/#assigning.
const MaxFieldNumber = 1<<29 - 1

// Field types declared in https://protobuf.dev/programming-guides/encoding/#structure
// which are produced by the encoder.
const (
	FieldTypeVARINT = 0
	FieldTypeLEN    = 2
)

const errFieldNumber = "invalid protobuf field number"

// EncodeTag encodes protobuf tag for field with given number and type. Panics
// if num is out of [1, MaxFieldNumber] range.
func EncodeTag(num, typ uint64) uint64 {
	if num == 0 || num > MaxFieldNumber {
		panic(errFieldNumber)
	}
	return num<<3 | typ&7
}

// SizeVarint returns length of [FieldTypeVARINT] field.
func SizeVarint(x uint64) int {
	i := 0
	for x >= 0x80 {
		x = x >> 7
		i++
	}
	return i + 1
}

// PutUvarint encodes x into buf with given offset and returns the number of
// bytes written.
func PutUvarint(buf []byte, off int, x uint64) int {
	i := 0
	for x >= 0x80 {
		// VM throws exception on type narrowing, so the value is masked.
		buf[off+i] = byte(x&0xFF | 0x80)
		x = x >> 7
		i++
	}
	buf[off+i] = byte(x)
	return i + 1
}
