// Package qrsym builds the module matrix of a QR Code symbol from a
// text or byte payload: mode selection, data encoding, Reed-Solomon
// error correction, matrix construction, and mask selection. Rendering
// the matrix to pixels, SVG, or any other visual form is left to a
// separate collaborator.
package qrsym

import (
	"regexp"
	"strings"

	"github.com/qrsym/qrsym/coding"
	"github.com/qrsym/qrsym/internal/octet"
)

var (
	numericRE      = regexp.MustCompile(`^[0-9]*$`)
	alphaUpperRE   = regexp.MustCompile(`^[A-Z0-9 $%*+\-./:]*$`)
	alphaAnyCaseRE = regexp.MustCompile(`^[A-Za-z0-9 $%*+\-./:]*$`)
)

// Symbol is a fully resolved and encoded QR Code symbol.
type Symbol struct {
	Version  coding.Version
	EccLevel coding.EccLevel
	Mode     coding.Mode
	Mask     int
	Matrix   [][]int
}

// New resolves opts against data (a string or []byte payload), encodes
// it, and builds the final module matrix. See Options for the
// resolution rules.
func New(data any, opts Options) (*Symbol, error) {
	text, raw, err := normalizeData(data)
	if err != nil {
		return nil, err
	}

	level, err := resolveEccLevel(opts.EccLevel)
	if err != nil {
		return nil, err
	}

	mode, err := resolveMode(opts.Mode, text, raw)
	if err != nil {
		return nil, err
	}

	payload, err := validatePayload(mode, text, raw)
	if err != nil {
		return nil, err
	}

	version, err := resolveVersion(opts.Version, mode, level, len(payload))
	if err != nil {
		return nil, err
	}

	mask, err := resolveMask(opts.Mask)
	if err != nil {
		return nil, err
	}

	matrix, chosen := coding.Build(version, level, mode, payload, mask)
	return &Symbol{
		Version:  version,
		EccLevel: level,
		Mode:     mode,
		Mask:     chosen,
		Matrix:   matrix.Bits(),
	}, nil
}

// normalizeData accepts either a string or a []byte payload. Anything
// else is InvalidData.
func normalizeData(data any) (text string, raw []byte, err error) {
	switch v := data.(type) {
	case string:
		return v, nil, nil
	case []byte:
		return "", v, nil
	case nil:
		return "", nil, &coding.Error{Kind: coding.InvalidData, Msg: "payload is nil"}
	default:
		return "", nil, &coding.Error{Kind: coding.InvalidData, Msg: "unsupported payload type"}
	}
}

func resolveEccLevel(tag string) (coding.EccLevel, error) {
	if tag == "" {
		return coding.L, nil
	}
	switch strings.ToUpper(tag) {
	case "L":
		return coding.L, nil
	case "M":
		return coding.M, nil
	case "Q":
		return coding.Q, nil
	case "H":
		return coding.H, nil
	}
	return 0, &coding.Error{Kind: coding.InvalidEccLevel, Msg: tag}
}

// resolveMode implements the configuration resolver's mode rule: an
// explicit mode request is honored if it names a supported mode;
// otherwise the mode is detected from the payload, byte payloads
// always defaulting to Byte.
func resolveMode(tag string, text string, raw []byte) (coding.Mode, error) {
	if tag != "" {
		switch strings.ToLower(tag) {
		case "numeric":
			return coding.Numeric, nil
		case "alphanumeric":
			return coding.Alphanumeric, nil
		case "octet":
			return coding.Byte, nil
		}
		return 0, &coding.Error{Kind: coding.InvalidMode, Msg: tag}
	}
	if raw != nil {
		return coding.Byte, nil
	}
	switch {
	case numericRE.MatchString(text):
		return coding.Numeric, nil
	case alphaUpperRE.MatchString(text):
		return coding.Alphanumeric, nil
	default:
		return coding.Byte, nil
	}
}

// validatePayload returns the bytes to hand to coding.Build:
// characters for Numeric/Alphanumeric, raw bytes for Byte. Alphanumeric
// input is upper-cased here, so that a caller passing lowercase text
// with an explicit "alphanumeric" mode still encodes instead of
// failing character validation.
func validatePayload(mode coding.Mode, text string, raw []byte) ([]byte, error) {
	if raw != nil {
		if mode != coding.Byte {
			return nil, &coding.Error{Kind: coding.PayloadModeMismatch, Msg: "byte payload requires octet mode"}
		}
		return raw, nil
	}
	switch mode {
	case coding.Numeric:
		if !numericRE.MatchString(text) {
			return nil, &coding.Error{Kind: coding.PayloadModeMismatch, Msg: "not numeric"}
		}
		return []byte(text), nil
	case coding.Alphanumeric:
		if !alphaAnyCaseRE.MatchString(text) {
			return nil, &coding.Error{Kind: coding.PayloadModeMismatch, Msg: "not alphanumeric"}
		}
		return []byte(strings.ToUpper(text)), nil
	case coding.Byte:
		b, err := octet.Encode(text)
		if err != nil {
			return nil, &coding.Error{Kind: coding.PayloadModeMismatch, Msg: err.Error()}
		}
		return b, nil
	}
	return nil, &coding.Error{Kind: coding.InvalidMode}
}

// resolveVersion honors an explicit version if the payload fits it, or
// otherwise picks the smallest version the payload fits at mode and
// level.
func resolveVersion(want int, mode coding.Mode, level coding.EccLevel, payloadLen int) (coding.Version, error) {
	if want != 0 {
		v := coding.Version(want)
		if !v.Valid() {
			return 0, &coding.Error{Kind: coding.InvalidVersion}
		}
		if payloadLen > coding.MaxPayloadLen(mode, v, level) {
			return 0, &coding.Error{Kind: coding.PayloadTooLarge}
		}
		return v, nil
	}
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		if payloadLen <= coding.MaxPayloadLen(mode, v, level) {
			return v, nil
		}
	}
	return 0, &coding.Error{Kind: coding.PayloadTooLarge}
}

func resolveMask(want *int) (int, error) {
	if want == nil {
		return -1, nil
	}
	if *want < 0 || *want > 7 {
		return 0, &coding.Error{Kind: coding.InvalidMask}
	}
	return *want, nil
}
