package coding

import "testing"

// TestMaxPayloadLenVersion1L checks the well known version 1, level L
// capacity figures from the standard's capacity table.
func TestMaxPayloadLenVersion1L(t *testing.T) {
	cases := []struct {
		m    Mode
		want int
	}{
		{Numeric, 41},
		{Alphanumeric, 25},
		{Byte, 17},
	}
	for _, c := range cases {
		if got := MaxPayloadLen(c.m, 1, L); got != c.want {
			t.Errorf("MaxPayloadLen(%v, 1, L) = %d, want %d", c.m, got, c.want)
		}
	}
}

// TestMaxPayloadLenVersion40H checks the largest symbol at the
// strictest level still returns a sane, monotonically ordered set of
// capacities across modes.
func TestMaxPayloadLenVersion40H(t *testing.T) {
	num := MaxPayloadLen(Numeric, 40, H)
	alpha := MaxPayloadLen(Alphanumeric, 40, H)
	byt := MaxPayloadLen(Byte, 40, H)
	if !(byt < alpha && alpha < num) {
		t.Errorf("expected byte < alphanumeric < numeric capacity, got byte=%d alpha=%d num=%d", byt, alpha, num)
	}
}

func TestMaxPayloadLenMonotonicInVersion(t *testing.T) {
	prev := 0
	for v := MinVersion; v <= MaxVersion; v++ {
		got := MaxPayloadLen(Byte, v, L)
		if got < prev {
			t.Errorf("MaxPayloadLen(Byte, %d, L) = %d, less than version %d's %d", v, got, v-1, prev)
		}
		prev = got
	}
}
