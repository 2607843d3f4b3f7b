package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bankocr/glyph"
)

// Record geometry.
const (
	Rows       = glyph.Height        // text rows per record
	Cells      = 9                   // digits per account number
	Columns    = Cells * glyph.Width // characters per row
	RecordSize = Rows * Columns      // characters per record stream
)

// Grid is a rectangular block of characters. Width and Height are its
// dimensions; rows[y][x] holds the character at column x of row y.
type Grid struct {
	Width, Height int
	rows          []string
}

// New constructs a Grid from non-empty, equal-length rows. The rows are
// copied so later changes by the caller do not leak in.
// Returns ErrEmptyGrid or ErrNonRectangular.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns, row 0 has %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	cp := make([]string, len(rows))
	copy(cp, rows)

	return &Grid{Width: w, Height: len(rows), rows: cp}, nil
}

// FromRecord reshapes a RecordSize-character stream, row after row, into a
// Rows×Columns grid. Any other length fails with ErrBadShape.
func FromRecord(text string) (*Grid, error) {
	if len(text) != RecordSize {
		return nil, fmt.Errorf("record has %d characters, want %d: %w", len(text), RecordSize, ErrBadShape)
	}
	rows := make([]string, Rows)
	for y := 0; y < Rows; y++ {
		rows[y] = text[y*Columns : (y+1)*Columns]
	}

	return New(rows)
}

// FromRows builds a record grid from exactly Rows rows of Columns characters
// each. Any other shape fails with ErrBadShape naming the offending row.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("record has %d rows, want %d: %w", len(rows), Rows, ErrBadShape)
	}
	for y, row := range rows {
		if len(row) != Columns {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", y, len(row), Columns, ErrBadShape)
		}
	}

	return New(rows)
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the character at column x of row y. It panics when out of bounds.
func (g *Grid) At(x, y int) byte {
	return g.rows[y][x]
}

// Rows returns a copy of the grid rows.
func (g *Grid) Rows() []string {
	out := make([]string, len(g.rows))
	copy(out, g.rows)
	return out
}

// String joins the rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.rows, "\n")
}

// Cells slices the grid into one Pattern per digit position. For position p
// the pattern is the three characters at columns 3p..3p+2 of each row, rows
// concatenated top to bottom. The grid must be exactly Rows×Columns.
func (g *Grid) Cells() ([Cells]glyph.Pattern, error) {
	var out [Cells]glyph.Pattern
	if g.Height != Rows || g.Width != Columns {
		return out, fmt.Errorf("grid is %dx%d: %w", g.Height, g.Width, ErrBadShape)
	}
	var b strings.Builder
	for p := 0; p < Cells; p++ {
		b.Reset()
		b.Grow(glyph.Size)
		x := p * glyph.Width
		for y := 0; y < Rows; y++ {
			b.WriteString(g.rows[y][x : x+glyph.Width])
		}
		out[p] = glyph.Pattern(b.String())
	}

	return out, nil
}

// Split reshapes text with FromRecord and returns its Cells.
func Split(text string) ([Cells]glyph.Pattern, error) {
	g, err := FromRecord(text)
	if err != nil {
		return [Cells]glyph.Pattern{}, err
	}
	return g.Cells()
}
