package coding

import "strings"

// alphanumericTable maps the 45 characters permitted in ALPHANUMERIC
// mode to their packed value, 0..44.
const alphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func alphanumericValue(c byte) (int, bool) {
	i := strings.IndexByte(alphanumericChars, c)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// EncodePayload packs mode, the length indicator, and the payload bits
// into bits, following §4.4's exact per-mode grouping. data holds
// characters for Numeric/Alphanumeric (already validated and, for
// Alphanumeric, upper-cased by the caller) or raw bytes for Byte mode.
func EncodePayload(bits *Bits, m Mode, v Version, data []byte) {
	bits.Write(uint32(m), 4)
	bits.Write(uint32(len(data)), lenIndicatorBits(m, v))
	switch m {
	case Numeric:
		writeNumeric(bits, data)
	case Alphanumeric:
		writeAlphanumeric(bits, data)
	case Byte:
		for _, c := range data {
			bits.Write(uint32(c), 8)
		}
	}
}

func writeNumeric(bits *Bits, data []byte) {
	for i := 0; i < len(data); i += 3 {
		group := data[i:min(i+3, len(data))]
		val := 0
		for _, c := range group {
			val = val*10 + int(c-'0')
		}
		var nbit int
		switch len(group) {
		case 1:
			nbit = 4
		case 2:
			nbit = 7
		default:
			nbit = 10
		}
		bits.Write(uint32(val), nbit)
	}
}

func writeAlphanumeric(bits *Bits, data []byte) {
	for i := 0; i < len(data); i += 2 {
		if i+1 < len(data) {
			a, _ := alphanumericValue(data[i])
			b, _ := alphanumericValue(data[i+1])
			bits.Write(uint32(a*45+b), 11)
		} else {
			a, _ := alphanumericValue(data[i])
			bits.Write(uint32(a), 6)
		}
	}
}

// writeTerminatorAndPad appends the 4-bit terminator (truncated if the
// remaining capacity is smaller), flushes to a byte boundary, then
// alternates the 0xEC/0x11 pad codewords up to the level's data
// codeword capacity.
//
// The explicit remaining-bits computation below is deliberate: the
// terminator must never write past dataBits even on an exact-fit
// payload, where naively emitting a full 4-bit terminator would
// overflow the buffer by up to 4 bits.
func writeTerminatorAndPad(bits *Bits, v Version, l EccLevel) {
	capBits := dataBits(v, l)
	if remaining := capBits - bits.Len(); remaining > 0 {
		term := remaining
		if term > 4 {
			term = 4
		}
		bits.Write(0, term)
	}
	if pad := -bits.Len() & 7; pad > 0 {
		bits.Write(0, pad)
	}
	capBytes := capBits / 8
	for i := 0; bits.Len()/8 < capBytes; i++ {
		if i%2 == 0 {
			bits.Write(0xEC, 8)
		} else {
			bits.Write(0x11, 8)
		}
	}
}
