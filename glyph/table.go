// SPDX-License-Identifier: MIT
// Package: bankocr/glyph
//
// table.go - canonical cell patterns for digits 0..9 (data-only).
//
// Contract:
//   - patterns[d] is the single source of truth for digit d.
//   - byPattern is derived once from patterns; nothing mutates either after init.
//   - Decoding logic elsewhere must go through Lookup/Render, never literals.

package glyph

import (
	"fmt"
	"strings"
)

// Cell geometry.
const (
	Width  = 3              // characters per cell row
	Height = 3              // rows per cell
	Size   = Width * Height // characters per flattened Pattern
)

// Alphabet lists every rune allowed inside a Pattern.
const Alphabet = " _|"

// Pattern is one cell flattened row-major (top, middle, bottom row).
type Pattern string

// patterns is indexed by digit value.
var patterns = [10]Pattern{
	" _ | ||_|", // 0
	"     |  |", // 1
	" _  _||_ ", // 2
	" _  _| _|", // 3
	"   |_|  |", // 4
	" _ |_  _|", // 5
	" _ |_ |_|", // 6
	" _   |  |", // 7
	" _ |_||_|", // 8
	" _ |_| _|", // 9
}

var byPattern = func() map[Pattern]uint8 {
	m := make(map[Pattern]uint8, len(patterns))
	for d, p := range patterns {
		m[p] = uint8(d)
	}
	return m
}()

// Lookup returns the digit encoded by p. The boolean is false when p is not
// in the table; the returned Digit is then Illegible.
// Complexity: O(1).
func Lookup(p Pattern) (Digit, bool) {
	v, ok := byPattern[p]
	if !ok {
		return Illegible, false
	}
	return Digit{value: v, legible: true}, true
}

// Render returns the canonical pattern for value (reverse of Lookup).
// Returns ErrUnknownDigit if value is outside 0..9.
func Render(value int) (Pattern, error) {
	if value < 0 || value > 9 {
		return "", fmt.Errorf("Render(%d): %w", value, ErrUnknownDigit)
	}
	return patterns[value], nil
}

// Validate reports ErrBadPattern unless p has exactly Size characters from Alphabet.
func (p Pattern) Validate() error {
	if len(p) != Size {
		return fmt.Errorf("pattern %q has length %d: %w", string(p), len(p), ErrBadPattern)
	}
	for i := 0; i < len(p); i++ {
		if strings.IndexByte(Alphabet, p[i]) < 0 {
			return fmt.Errorf("pattern %q has %q at %d: %w", string(p), p[i], i, ErrBadPattern)
		}
	}
	return nil
}

// Row returns row r (0..2) of the cell. It panics if p is shorter than Size.
func (p Pattern) Row(r int) string {
	return string(p[r*Width : (r+1)*Width])
}

// Format renders the cell as three newline-separated rows. A pattern that is
// not Size characters long is returned unchanged.
func (p Pattern) Format() string {
	if len(p) != Size {
		return string(p)
	}
	return p.Row(0) + "\n" + p.Row(1) + "\n" + p.Row(2)
}
