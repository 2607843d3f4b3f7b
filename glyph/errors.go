package glyph

import "errors"

var (
	// ErrBadPattern indicates a pattern that is not nine characters drawn from {' ', '_', '|'}.
	ErrBadPattern = errors.New("glyph: pattern must be 9 characters of ' ', '_' or '|'")
	// ErrUnknownDigit indicates a value outside the 0..9 range.
	ErrUnknownDigit = errors.New("glyph: digit out of range")
)
