package coding

// Build runs the full symbol-construction pipeline: data encoding,
// Reed-Solomon augmentation, matrix scaffolding, zig-zag placement,
// and masking. mask selects a fixed mask 0..7, or -1 for
// auto-selection via the penalty score (§4.9). It returns the final
// matrix and the mask number actually used.
//
// payload holds characters (Numeric/Alphanumeric) or raw bytes (Byte);
// callers are responsible for validating and, for Alphanumeric,
// upper-casing it beforehand.
func Build(v Version, l EccLevel, mode Mode, payload []byte, mask int) (*Matrix, int) {
	bits := NewBits(v.dataCodewords(l))
	EncodePayload(bits, mode, v, payload)
	writeTerminatorAndPad(bits, v, l)
	codewords := AddECC(bits.Bytes(), v, l)

	m := NewMatrix(v)
	buildFunctionPatterns(m, v)
	writeVersionInfo(m, v)
	placeData(m, codewords)

	if mask < 0 {
		mask = chooseMask(m, l)
	}
	applyMask(m, mask)
	writeFormatInfo(m, l, mask)

	return m, mask
}
