package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/bankocr/glyph"
	"github.com/katalvlaran/bankocr/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeros = " _  _  _  _  _  _  _  _  _ " +
	"| || || || || || || || || |" +
	"|_||_||_||_||_||_||_||_||_|"

const ones = "                           " +
	"  |  |  |  |  |  |  |  |  |" +
	"  |  |  |  |  |  |  |  |  |"

//----------------------------------------------------------------------------//
// New and FromRecord Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", []string{}, grid.ErrEmptyGrid},
		{"EmptyCols", []string{""}, grid.ErrEmptyGrid},
		{"NonRectangular", []string{"ab", "c"}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromRecord_Rows mirrors how a record stream is reshaped row by row.
func TestFromRecord_Rows(t *testing.T) {
	g, err := grid.FromRecord(ones)
	require.NoError(t, err)

	rows := g.Rows()
	require.Len(t, rows, grid.Rows)
	assert.Equal(t, byte(' '), rows[0][0])
	assert.Equal(t, byte(' '), rows[1][1])
	assert.Equal(t, byte('|'), rows[2][2])
	assert.Equal(t, grid.Columns, g.Width)
	assert.Equal(t, grid.Rows, g.Height)
	assert.Equal(t, byte('|'), g.At(2, 2))
}

// TestFromRecord_BadShape checks that short and long streams fail instead of misaligning.
func TestFromRecord_BadShape(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"OneCharShort", zeros[:grid.RecordSize-1]},
		{"OneCharLong", zeros + " "},
		{"TwoRows", zeros[:2*grid.Columns]},
		{"FourRows", zeros + ones[:grid.Columns]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRecord(tc.text)
			assert.ErrorIs(t, err, grid.ErrBadShape)
			_, err = grid.Split(tc.text)
			assert.ErrorIs(t, err, grid.ErrBadShape)
		})
	}
}

// TestFromRows_BadShape checks every row is measured on its own.
func TestFromRows_BadShape(t *testing.T) {
	r0, r1, r2 := zeros[:grid.Columns], zeros[grid.Columns:2*grid.Columns], zeros[2*grid.Columns:]
	cases := []struct {
		name string
		rows []string
	}{
		{"NoRows", nil},
		{"TwoRows", []string{r0, r1}},
		{"FourRows", []string{r0, r1, r2, r2}},
		{"RaggedSameTotal", []string{r0[:26], r1 + " ", r2}},
		{"AllShort", []string{r0[:3], r1[:3], r2[:3]}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, grid.ErrBadShape)
		})
	}

	g, err := grid.FromRows([]string{r0, r1, r2})
	require.NoError(t, err)
	assert.Equal(t, zeros[:grid.Columns], g.Rows()[0])
}

func TestInBounds(t *testing.T) {
	g, err := grid.New([]string{"abc", "def"})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Cells Tests
//----------------------------------------------------------------------------//

func TestCells_Zeros(t *testing.T) {
	cells, err := grid.Split(zeros)
	require.NoError(t, err)

	want, err := glyph.Render(0)
	require.NoError(t, err)
	for p, c := range cells {
		assert.Equal(t, want, c, "position %d", p)
	}
	assert.Equal(t, " _ \n| |\n|_|", cells[0].Format())
}

// TestCells_Positions checks each cell is taken from its own column band.
func TestCells_Positions(t *testing.T) {
	rows := make([]string, grid.Rows)
	for y := range rows {
		var b strings.Builder
		for v := 1; v <= grid.Cells; v++ {
			p, err := glyph.Render(v % 10)
			require.NoError(t, err)
			b.WriteString(p.Row(y))
		}
		rows[y] = b.String()
	}
	g, err := grid.New(rows)
	require.NoError(t, err)

	cells, err := g.Cells()
	require.NoError(t, err)
	for p, c := range cells {
		d, ok := glyph.Lookup(c)
		require.True(t, ok, "position %d pattern %q", p, c)
		assert.Equal(t, (p+1)%10, d.Int())
	}
}

func TestCells_WrongDimensions(t *testing.T) {
	g, err := grid.New([]string{"   ", "  |", "  |"})
	require.NoError(t, err)

	_, err = g.Cells()
	assert.ErrorIs(t, err, grid.ErrBadShape)
}

func TestRows_ReturnsCopy(t *testing.T) {
	g, err := grid.FromRecord(zeros)
	require.NoError(t, err)

	rows := g.Rows()
	rows[0] = "mutated"
	assert.Equal(t, zeros[:grid.Columns], g.Rows()[0])
	assert.Equal(t, 3*grid.Columns+2, len(g.String()))
}
