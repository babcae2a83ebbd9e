package factory

const digits = "0123456789"

// FormatAmount returns decimal representation of non-negative amount as
// expected in cosmos Coin. It doesn't depend on native contracts, so it works
// the same way in VM and in regular Go code.
func FormatAmount(amount int) string {
	if amount < 0 {
		panic(errNegativeAmount)
	}
	if amount == 0 {
		return "0"
	}

	s := ""
	for amount > 0 {
		d := amount % 10
		s = digits[d:d+1] + s
		amount /= 10
	}
	return s
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ { //nolint:intrange // Not supported by NeoGo
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] = b[i] + 'a' - 'A'
		}
	}
	return string(b)
}
