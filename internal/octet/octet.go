// Package octet validates and canonicalizes text payloads destined for
// a QR Code symbol's OCTET mode, the way the teacher's byte-mode
// segments run text through a golang.org/x/text/encoding transform
// before packing bytes, except here the target encoding is UTF-8
// itself: a payload containing invalid UTF-8 is rejected rather than
// silently passed through as mis-encoded bytes.
package octet

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Encode validates s as UTF-8 and returns its byte representation. It
// fails if s contains invalid UTF-8, mirroring how the teacher's
// Latin1/ShiftJISKanji transforms fail on input their target charset
// cannot represent.
func Encode(s string) ([]byte, error) {
	enc := unicode.UTF8.NewEncoder()
	out, err := enc.String(s)
	if err != nil {
		return nil, fmt.Errorf("octet: invalid UTF-8: %w", err)
	}
	return []byte(out), nil
}
