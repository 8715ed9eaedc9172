// Package keys builds the identifying values that tie tables together:
// printable business keys, slowly-changing-dimension revision windows, null
// bitmaps and cross-table join keys.
package keys

const businessKeyChars = "ABCDEFGHIJKLMNOP"

// MakeBusinessKey encodes an ordinal as a 16-character printable key. The
// high and low 32-bit halves are each rendered as 8 characters, least
// significant nibble first.
func MakeBusinessKey(ordinal int64) string {
	var buf [16]byte
	encodeKeyHalf(buf[:8], uint32(ordinal>>32))
	encodeKeyHalf(buf[8:], uint32(ordinal))
	return string(buf[:])
}

func encodeKeyHalf(dst []byte, value uint32) {
	for i := 0; i < 8; i++ {
		dst[i] = businessKeyChars[value&0xF]
		value >>= 4
	}
}
