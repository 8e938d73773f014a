package coding

// placeData writes data's bits into m's non-reserved cells in the
// standard right-to-left, bottom-to-top-then-top-to-bottom zig-zag
// column-pair order, skipping the column-6 timing pattern. Bits beyond
// len(data)*8 are treated as 0, the natural zero-pad for a symbol's
// small residual capacity that isn't spent on data or ECC codewords.
func placeData(m *Matrix, data []byte) {
	k := 0
	bit := func() int {
		if byteIdx := k >> 3; byteIdx < len(data) {
			b := int(data[byteIdx]>>uint(7-k&7)) & 1
			k++
			return b
		}
		k++
		return 0
	}

	dir := -1
	for col := m.N - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		if dir < 0 {
			for row := m.N - 1; row >= 0; row-- {
				placeCell(m, row, col, bit)
				placeCell(m, row, col-1, bit)
			}
		} else {
			for row := 0; row < m.N; row++ {
				placeCell(m, row, col, bit)
				placeCell(m, row, col-1, bit)
			}
		}
		dir = -dir
	}
}

func placeCell(m *Matrix, row, col int, bit func() int) {
	if m.Reserved[row][col] != 0 {
		return
	}
	m.bit[row][col] = bit()
}
