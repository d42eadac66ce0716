package formatter

const hexDigits = "0123456789abcdef"

// CountDigits returns the number of decimal digits of v.
func CountDigits(v uint64) int {
	n := 1
	for v >= 10000 {
		v /= 10000
		n += 4
	}
	switch {
	case v >= 1000:
		return n + 3
	case v >= 100:
		return n + 2
	case v >= 10:
		return n + 1
	}
	return n
}

// WriteUint writes v right-aligned into dst, least significant digit
// last. Unused leading positions are filled with '0', so passing a slice
// of exactly CountDigits(v) bytes writes the plain number.
func WriteUint(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		q := v / 10
		dst[i] = byte('0' + v - q*10)
		v = q
	}
}

// WriteTwoDigits writes v (0..99) as two zero-padded digits.
func WriteTwoDigits(dst []byte, v uint32) {
	_ = dst[1]
	tens := v / 10
	dst[0] = byte('0' + tens)
	dst[1] = byte('0' + v - tens*10)
}

// WriteHex writes the low 4*len(dst) bits of v as zero-padded lowercase
// hexadecimal.
func WriteHex(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = hexDigits[v&0xf]
		v >>= 4
	}
}
