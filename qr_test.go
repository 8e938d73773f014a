package qrsym

import "testing"

func assertSquareBinary(t *testing.T, s *Symbol) {
	t.Helper()
	n := len(s.Matrix)
	if s.Version.Dimension() != n {
		t.Fatalf("matrix has %d rows, want %d for version %d", n, s.Version.Dimension(), s.Version)
	}
	for _, row := range s.Matrix {
		if len(row) != n {
			t.Fatalf("row length %d, want %d", len(row), n)
		}
		for _, v := range row {
			if v != 0 && v != 1 {
				t.Fatalf("cell value %d, want 0 or 1", v)
			}
		}
	}
}

func TestNewHelloWorldAutoVersionAndMask(t *testing.T) {
	s, err := New("HELLO WORLD", Options{EccLevel: "Q"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Version != 1 {
		t.Errorf("Version = %d, want 1", s.Version)
	}
	if s.Mode.String() != "alphanumeric" {
		t.Errorf("Mode = %v, want alphanumeric", s.Mode)
	}
	if s.Mask != 0 {
		t.Errorf("Mask = %d, want 0 (lowest-penalty mask for this input)", s.Mask)
	}
	assertSquareBinary(t, s)
}

func TestNewNumericPayload(t *testing.T) {
	s, err := New("01234567", Options{EccLevel: "M"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Mode.String() != "numeric" {
		t.Errorf("Mode = %v, want numeric", s.Mode)
	}
	assertSquareBinary(t, s)
}

func TestNewURLIsOctet(t *testing.T) {
	s, err := New("https://example.com/", Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Mode.String() != "byte" {
		t.Errorf("Mode = %v, want byte (URLs contain characters outside alphanumeric mode's set)", s.Mode)
	}
	assertSquareBinary(t, s)
}

func TestNewBinaryPayloadHighLevel(t *testing.T) {
	s, err := New([]byte{0x00, 0xFF, 0x10, 0xAB}, Options{EccLevel: "H"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Mode.String() != "byte" {
		t.Errorf("Mode = %v, want byte", s.Mode)
	}
	if s.EccLevel.String() != "H" {
		t.Errorf("EccLevel = %v, want H", s.EccLevel)
	}
	assertSquareBinary(t, s)
}

func TestNewFixedVersionAndMaskComparison(t *testing.T) {
	mask0, mask1 := 0, 1
	s0, err := New("A", Options{EccLevel: "L", Version: 40, Mask: &mask0})
	if err != nil {
		t.Fatalf("New(mask 0): %v", err)
	}
	s1, err := New("A", Options{EccLevel: "L", Version: 40, Mask: &mask1})
	if err != nil {
		t.Fatalf("New(mask 1): %v", err)
	}
	if s0.Mask != 0 || s1.Mask != 1 {
		t.Fatalf("masks not honored: got %d, %d", s0.Mask, s1.Mask)
	}
	same := true
	for i := range s0.Matrix {
		for j := range s0.Matrix[i] {
			if s0.Matrix[i][j] != s1.Matrix[i][j] {
				same = false
			}
		}
	}
	if same {
		t.Error("symbols with different fixed masks produced identical matrices")
	}
}

func TestNewEmptyPayload(t *testing.T) {
	s, err := New("", Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Version != 1 {
		t.Errorf("Version = %d, want 1 for an empty payload", s.Version)
	}
	assertSquareBinary(t, s)
}

func TestNewInvalidEccLevel(t *testing.T) {
	if _, err := New("hi", Options{EccLevel: "Z"}); err == nil {
		t.Error("New with an invalid ECC level should fail")
	}
}

func TestNewPayloadTooLargeForFixedVersion(t *testing.T) {
	big := make([]byte, 10000)
	if _, err := New(big, Options{Version: 1, EccLevel: "H"}); err == nil {
		t.Error("New with an oversized payload for a fixed version should fail")
	}
}

func TestNewAlphanumericLowercaseIsUppercased(t *testing.T) {
	s, err := New("hello world", Options{Mode: "alphanumeric"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Mode.String() != "alphanumeric" {
		t.Errorf("Mode = %v, want alphanumeric", s.Mode)
	}
	assertSquareBinary(t, s)
}
