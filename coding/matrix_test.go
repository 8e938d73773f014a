package coding

import "testing"

func TestNewMatrixDimension(t *testing.T) {
	m := NewMatrix(1)
	if m.N != 21 {
		t.Errorf("NewMatrix(1).N = %d, want 21", m.N)
	}
	m = NewMatrix(40)
	if m.N != 177 {
		t.Errorf("NewMatrix(40).N = %d, want 177", m.N)
	}
}

func TestFinderPatternsAreDark(t *testing.T) {
	m := NewMatrix(1)
	buildFunctionPatterns(m, 1)
	// the three finder patterns' central 3x3 dark squares.
	corners := [][2]int{{2, 2}, {2, m.N - 3}, {m.N - 3, 2}}
	for _, c := range corners {
		if m.bit[c[0]][c[1]] != 1 {
			t.Errorf("finder center at (%d,%d) = %d, want 1", c[0], c[1], m.bit[c[0]][c[1]])
		}
		if !(m.Reserved[c[0]][c[1]] != 0) {
			t.Errorf("finder center at (%d,%d) not reserved", c[0], c[1])
		}
	}
}

func TestTimingPatternAlternates(t *testing.T) {
	m := NewMatrix(1)
	buildFunctionPatterns(m, 1)
	for i := 8; i < m.N-8; i++ {
		want := (^i) & 1
		if m.bit[6][i] != want {
			t.Errorf("timing row bit at col %d = %d, want %d", i, m.bit[6][i], want)
		}
	}
}

func TestAlignmentPatternPlacedVersion2(t *testing.T) {
	m := NewMatrix(2)
	buildFunctionPatterns(m, 2)
	// version 2's single alignment pattern is centered at (18,18).
	if m.bit[18][18] != 1 {
		t.Errorf("alignment center (18,18) = %d, want 1", m.bit[18][18])
	}
	if m.bit[16][16] != 1 {
		t.Errorf("alignment outer corner (16,16) = %d, want 1", m.bit[16][16])
	}
	if m.bit[17][17] != 0 {
		t.Errorf("alignment interior ring (17,17) = %d, want 0", m.bit[17][17])
	}
}

func TestVersionInfoOnlyForV7Plus(t *testing.T) {
	m6 := NewMatrix(6)
	buildFunctionPatterns(m6, 6)
	writeVersionInfo(m6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			if m6.Reserved[i][m6.N-11+j] != 0 {
				t.Fatalf("version 6 must not reserve version-info block")
			}
		}
	}

	m7 := NewMatrix(7)
	buildFunctionPatterns(m7, 7)
	writeVersionInfo(m7, 7)
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			if m7.Reserved[i][m7.N-11+j] == 0 {
				t.Fatalf("version 7 must reserve version-info block at (%d,%d)", i, m7.N-11+j)
			}
		}
	}
}

// TestVersionInfoBCHRoundTrip checks that the low 6 bits of the
// augmented version code equal the version number, which any correct
// systematic BCH code guarantees.
func TestVersionInfoBCHRoundTrip(t *testing.T) {
	for v := Version(7); v <= 40; v++ {
		code := bchAugment(uint32(v), 6, 12, 0x1F25)
		if got := code >> 12; got != uint32(v) {
			t.Errorf("version %d: bchAugment high bits = %d, want %d", v, got, v)
		}
	}
}
