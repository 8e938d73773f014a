package coding

// EccLevel is the error-correction level of a symbol: the fraction of
// codewords that can be corrupted and still recovered. Higher levels
// trade data capacity for resilience.
type EccLevel int

const (
	L EccLevel = iota // recovers ~7% of codewords
	M                 // recovers ~15% of codewords
	Q                 // recovers ~25% of codewords
	H                 // recovers ~30% of codewords
)

func (l EccLevel) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	}
	return "EccLevel(?)"
}

// Valid reports whether l is one of L, M, Q, H.
func (l EccLevel) Valid() bool { return l >= L && l <= H }

// index returns l's slot in the version table's per-level arrays, which
// are laid out in the scrambled order [M, L, H, Q] rather than the
// natural enumeration order. This is the same l^1 trick the format-info
// generator uses for the level field of the format bit string; here it
// happens to double as the table index.
func (l EccLevel) index() int { return int(l) ^ 1 }
