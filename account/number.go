package account

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bankocr/glyph"
	"github.com/katalvlaran/bankocr/grid"
)

// Length is the number of digits in an account number.
const Length = grid.Cells

// Number is a decoded account number, most significant digit first.
// Positions may be glyph.Illegible.
type Number [Length]glyph.Digit

// Legible is an account number whose digits are all readable. Values must be
// 0..9; Number.Legible only produces such values, and Checksum rejects others.
type Legible [Length]uint8

// Decode splits a record stream (3 rows of 27 characters, concatenated) into
// cells and looks each one up. Unknown cells become glyph.Illegible.
// A record of any other shape returns an error wrapping ErrBadRecord and
// grid.ErrBadShape.
func Decode(text string) (Number, error) {
	cells, err := grid.Split(text)
	if err != nil {
		return Number{}, fmt.Errorf("Decode: %w: %w", ErrBadRecord, err)
	}
	return FromCells(cells), nil
}

// DecodeRows is Decode for a record already split into its three text rows.
// Each row must be exactly 27 characters; otherwise the error wraps
// ErrBadRecord and grid.ErrBadShape and names the row.
func DecodeRows(rows []string) (Number, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return Number{}, fmt.Errorf("DecodeRows: %w: %w", ErrBadRecord, err)
	}
	cells, err := g.Cells()
	if err != nil {
		return Number{}, fmt.Errorf("DecodeRows: %w: %w", ErrBadRecord, err)
	}
	return FromCells(cells), nil
}

// FromCells looks up each pattern in the glyph table.
func FromCells(cells [Length]glyph.Pattern) Number {
	var n Number
	for i, c := range cells {
		n[i], _ = glyph.Lookup(c)
	}
	return n
}

// Parse reads the rendered form produced by Number.String: nine characters,
// each 0-9 or glyph.Placeholder.
func Parse(s string) (Number, error) {
	var n Number
	if len(s) != Length {
		return n, fmt.Errorf("Parse(%q): length %d: %w", s, len(s), ErrBadNumber)
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		switch {
		case c == glyph.Placeholder:
			n[i] = glyph.Illegible
		case c >= '0' && c <= '9':
			n[i], _ = glyph.Of(int(c - '0'))
		default:
			return Number{}, fmt.Errorf("Parse(%q): %q at %d: %w", s, c, i, ErrBadNumber)
		}
	}
	return n, nil
}

// String renders the number with glyph.Placeholder at illegible positions.
func (n Number) String() string {
	var b strings.Builder
	b.Grow(Length)
	for _, d := range n {
		b.WriteString(d.String())
	}
	return b.String()
}

// IllegiblePositions returns the 0-based positions of illegible digits.
func (n Number) IllegiblePositions() []int {
	var out []int
	for i, d := range n {
		if !d.Legible() {
			out = append(out, i)
		}
	}
	return out
}

// Legible returns the all-legible form of n. The boolean is false when any
// digit is illegible.
func (n Number) Legible() (Legible, bool) {
	var l Legible
	for i, d := range n {
		v, ok := d.Value()
		if !ok {
			return Legible{}, false
		}
		l[i] = uint8(v)
	}
	return l, true
}

// Number converts l back to a Number. Values above 9 become illegible.
func (l Legible) Number() Number {
	var n Number
	for i, v := range l {
		n[i], _ = glyph.Of(int(v))
	}
	return n
}

// String renders the digits.
func (l Legible) String() string {
	return l.Number().String()
}

// Rows draws l as the three text rows of a record.
// Returns glyph.ErrUnknownDigit if a value is above 9.
func (l Legible) Rows() ([grid.Rows]string, error) {
	var rows [grid.Rows]string
	var b [grid.Rows]strings.Builder
	for i, v := range l {
		p, err := glyph.Render(int(v))
		if err != nil {
			return rows, fmt.Errorf("Rows: position %d: %w", i, err)
		}
		for y := range b {
			b[y].WriteString(p.Row(y))
		}
	}
	for y := range rows {
		rows[y] = b[y].String()
	}
	return rows, nil
}

// Record draws l as a record stream accepted by Decode.
func (l Legible) Record() (string, error) {
	rows, err := l.Rows()
	if err != nil {
		return "", err
	}
	return rows[0] + rows[1] + rows[2], nil
}
