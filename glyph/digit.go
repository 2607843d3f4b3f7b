package glyph

import (
	"fmt"
	"strconv"
)

// Placeholder is shown in place of an illegible digit.
const Placeholder = '?'

// Digit is either a legible value 0..9 or Illegible. The zero value is Illegible,
// so an unset Digit can never be mistaken for 0.
type Digit struct {
	value   uint8
	legible bool
}

// Illegible marks a cell that matched no table entry.
var Illegible = Digit{}

// Of returns the legible digit for v, or ErrUnknownDigit if v is outside 0..9.
func Of(v int) (Digit, error) {
	if v < 0 || v > 9 {
		return Illegible, fmt.Errorf("Of(%d): %w", v, ErrUnknownDigit)
	}
	return Digit{value: uint8(v), legible: true}, nil
}

// Legible reports whether d holds a real value.
func (d Digit) Legible() bool { return d.legible }

// Value returns the digit value and whether it is legible.
func (d Digit) Value() (int, bool) {
	return int(d.value), d.legible
}

// Int returns the value, or -1 for Illegible.
func (d Digit) Int() int {
	if !d.legible {
		return -1
	}
	return int(d.value)
}

// String renders the digit, using Placeholder for Illegible.
func (d Digit) String() string {
	if !d.legible {
		return string(Placeholder)
	}
	return strconv.Itoa(int(d.value))
}
