package qrsym

// Options controls how a Symbol is resolved from a payload. Every
// field is optional; the zero value requests full auto-detection.
type Options struct {
	// EccLevel is one of "L", "M", "Q", "H" (case-insensitive).
	// Defaults to "L".
	EccLevel string

	// Version is 1..40, or 0 to auto-select the smallest version the
	// payload fits in at the resolved mode and level.
	Version int

	// Mode is one of "numeric", "alphanumeric", "octet"
	// (case-insensitive), or "" to auto-detect from the payload.
	Mode string

	// Mask is 0..7, or nil to auto-select the lowest-penalty mask. A
	// pointer rather than a plain int because 0 is itself a valid
	// mask number and can't double as "unset".
	Mask *int
}
