package proto

// AppendVarint appends x encoded as [FieldTypeVARINT] to b.
func AppendVarint(b []byte, x uint64) []byte {
	buf := make([]byte, SizeVarint(x))
	PutUvarint(buf, 0, x)
	return append(b, buf...)
}

// AppendTag appends protobuf tag of the field with given number and type to b.
func AppendTag(b []byte, num, typ uint64) []byte {
	return AppendVarint(b, EncodeTag(num, typ))
}

// AppendLEN appends [FieldTypeLEN] field with given number and payload to b.
// The field is written even if v is empty, so it's suitable for repeated and
// nested message fields.
func AppendLEN(b []byte, num uint64, v []byte) []byte {
	b = AppendTag(b, num, FieldTypeLEN)
	b = AppendVarint(b, uint64(len(v)))
	return append(b, v...)
}

// AppendString appends string field to b. Empty strings are omitted as
// proto3 does for scalar fields.
func AppendString(b []byte, num uint64, s string) []byte {
	if len(s) == 0 {
		return b
	}
	return AppendLEN(b, num, []byte(s))
}

// AppendBytes appends bytes field to b. Empty value is omitted.
func AppendBytes(b []byte, num uint64, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	return AppendLEN(b, num, v)
}

// AppendUint appends unsigned [FieldTypeVARINT] field to b. Zero value is
// omitted.
func AppendUint(b []byte, num uint64, x uint64) []byte {
	if x == 0 {
		return b
	}
	b = AppendTag(b, num, FieldTypeVARINT)
	return AppendVarint(b, x)
}
