package coding

// bchAugment computes the BCH error-correcting bits for poly (a p-bit
// value) using genpoly, and returns the q+p bit augmented codeword
// poly<<q | remainder. Used for both format information (p=5, q=10,
// genpoly=0x537) and version information (p=6, q=12, genpoly=0x1F25).
func bchAugment(poly uint32, p, q int, genpoly uint32) uint32 {
	m := poly << uint(q)
	for i := p - 1; i >= 0; i-- {
		if m&(1<<uint(q+i)) != 0 {
			m ^= genpoly << uint(i)
		}
	}
	return (poly << uint(q)) | m
}

// formatCode returns the 15-bit masked format-information code for the
// given ECC level index (already scrambled per EccLevel.index()) and
// mask number.
func formatCode(eccIndex int, mask int) uint32 {
	fmt5 := uint32(eccIndex)<<3 | uint32(mask)
	return bchAugment(fmt5, 5, 10, 0x537) ^ 0x5412
}

var formatRows = [15]int{0, 1, 2, 3, 4, 5, 7, 8, -7, -6, -5, -4, -3, -2, -1}
var formatCols = [15]int{-1, -2, -3, -4, -5, -6, -7, -8, 7, 5, 4, 3, 2, 1, 0}

// writeFormatInfo stamps both copies of the 15-bit format-information
// code for (l, mask) onto m.
func writeFormatInfo(m *Matrix, l EccLevel, mask int) {
	code := formatCode(l.index(), mask)
	n := m.N
	for i := 0; i < 15; i++ {
		row := formatRows[i]
		if row < 0 {
			row += n
		}
		col := formatCols[i]
		if col < 0 {
			col += n
		}
		bit := int(code>>uint(i)) & 1
		m.bit[row][8] = bit
		m.bit[8][col] = bit
		m.Reserved[row][8] = 1
		m.Reserved[8][col] = 1
	}
}

// maskCondition reports whether mask number k flips the cell at
// (i, j), per the eight standard mask patterns.
func maskCondition(k, i, j int) bool {
	switch k {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return (i*j)%2+(i*j)%3 == 0
	case 6:
		return ((i*j)%2+(i*j)%3)%2 == 0
	case 7:
		return ((i+j)%2+(i*j)%3)%2 == 0
	}
	panic("coding: invalid mask number")
}

// applyMask XORs every non-reserved cell of m for which maskCondition
// holds. Applying the same mask twice is the identity.
func applyMask(m *Matrix, k int) {
	for i := 0; i < m.N; i++ {
		for j := 0; j < m.N; j++ {
			if m.Reserved[i][j] == 0 && maskCondition(k, i, j) {
				m.bit[i][j] ^= 1
			}
		}
	}
}

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// runLengths returns the alternating run-length list for a row or
// column of cells, starting with a leading zero-length white group so
// the finder-pattern check below can look back past index 0 safely.
func runLengths(cells []int) []int {
	groups := []int{}
	cur := 0
	curLen := 0
	for _, c := range cells {
		if c == cur {
			curLen++
			continue
		}
		groups = append(groups, curLen)
		cur = c
		curLen = 1
	}
	groups = append(groups, curLen)
	return groups
}

// linePenalty adds the N1 (run of 5+) and N3 (finder-like 1:1:3:1:1
// pattern with a wide quiet zone on one side) penalties for a single
// row or column of cells.
func linePenalty(cells []int) int {
	groups := runLengths(cells)
	score := 0
	for _, g := range groups {
		if g >= 5 {
			score += penaltyN1 + (g - 5)
		}
	}
	for i := 5; i < len(groups); i += 2 {
		p := groups[i]
		if groups[i-1] == p && groups[i-2] == 3*p && groups[i-3] == p && groups[i-4] == p {
			wideBefore := groups[i-5] >= 4*p
			wideAfter := i+1 < len(groups) && groups[i+1] >= 4*p
			if wideBefore || wideAfter {
				score += penaltyN3
			}
		}
	}
	return score
}

// penalty scores m per §4.9: run-length (N1), 2x2 block (N2),
// finder-like pattern (N3), and module-density (N4) penalties. Lower
// is better.
func penalty(m *Matrix) int {
	score := 0
	n := m.N

	for i := 0; i < n; i++ {
		row := make([]int, n)
		for j := 0; j < n; j++ {
			row[j] = m.bit[i][j]
		}
		score += linePenalty(row)
	}
	for j := 0; j < n; j++ {
		col := make([]int, n)
		for i := 0; i < n; i++ {
			col[i] = m.bit[i][j]
		}
		score += linePenalty(col)
	}

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			v := m.bit[i][j]
			if m.bit[i][j+1] == v && m.bit[i+1][j] == v && m.bit[i+1][j+1] == v {
				score += penaltyN2
			}
		}
	}

	dark := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dark += m.bit[i][j]
		}
	}
	ratio := float64(dark) / float64(n*n)
	diff := ratio - 0.5
	if diff < 0 {
		diff = -diff
	}
	score += penaltyN4 * int(diff/0.05)

	return score
}

// chooseMask applies each of the 8 masks in turn, scores the result,
// and returns the lowest-scoring mask number, ties broken by lowest
// index. m is left with no mask applied on return.
func chooseMask(m *Matrix, l EccLevel) int {
	best, bestScore := 0, -1
	for k := 0; k < 8; k++ {
		applyMask(m, k)
		writeFormatInfo(m, l, k)
		score := penalty(m)
		applyMask(m, k)
		if bestScore < 0 || score < bestScore {
			best, bestScore = k, score
		}
	}
	return best
}
