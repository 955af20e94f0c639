package conv

const hexd = "0123456789ABCDEF"

// Hex writes the low digits hex digits of n, uppercase and zero-padded,
// without 0x. It returns the used tail of buf, or buf[:0] if buf is short.
func Hex(buf []byte, n uint32, digits int) []byte {
	if digits <= 0 || digits > 8 || len(buf) < digits {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < digits; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Byte is Hex for one register byte: two digits.
func Byte(buf []byte, b byte) []byte { return Hex(buf, uint32(b), 2) }
