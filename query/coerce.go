package query

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/confq/doc"
)

// GetString resolves path and returns the terminal text with exactly one
// pair of surrounding double quotes stripped when present; bare literal
// values are returned unchanged.
func GetString(d *doc.Document, path string) (string, error) {
	raw, err := Get(d, path)
	if err != nil {
		return "", err
	}
	return unquote(string(raw)), nil
}

// GetInt resolves path as a signed integer of the given bit width
// (strconv semantics: 0 < bitSize <= 64). The base is auto-detected from
// a 0x, 0b, or 0o prefix, defaulting to decimal.
func GetInt(d *doc.Document, path string, bitSize int) (int64, error) {
	s, err := GetString(d, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 0, bitSize)
	if err != nil {
		return 0, numErr(err, s)
	}
	return v, nil
}

// GetUint is GetInt for unsigned widths.
func GetUint(d *doc.Document, path string, bitSize int) (uint64, error) {
	s, err := GetString(d, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, numErr(err, s)
	}
	return v, nil
}

// GetFloat resolves path as a float of the given precision (32 or 64).
func GetFloat(d *doc.Document, path string, bitSize int) (float64, error) {
	s, err := GetString(d, path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, numErr(err, s)
	}
	return v, nil
}

// GetBool resolves path as a boolean; the unquoted text must be exactly
// "true" or "false".
func GetBool(d *doc.Document, path string) (bool, error) {
	s, err := GetString(d, path)
	if err != nil {
		return false, err
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrBadBool, s)
	}
}

// GetChar resolves path as a single character: either a bare one-byte
// literal or a three-byte single-quoted form like 'A'.
func GetChar(d *doc.Document, path string) (byte, error) {
	raw, err := Get(d, path)
	if err != nil {
		return 0, err
	}
	switch {
	case len(raw) == 1:
		return raw[0], nil
	case len(raw) == 3 && raw[0] == '\'' && raw[2] == '\'':
		return raw[1], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadChar, string(raw))
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// numErr keeps range overflow distinct from malformed syntax.
func numErr(err error, s string) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrNumberRange, s)
	}
	return fmt.Errorf("%w: %q", ErrBadNumber, s)
}
