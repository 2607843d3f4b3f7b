package record

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/bankocr/account"
	"github.com/katalvlaran/bankocr/grid"
)

// LinesPerRecord counts the glyph rows plus the separator line.
const LinesPerRecord = grid.Rows + 1

const (
	methodRead     = "Read"
	methodReadFile = "ReadFile"
)

// Read decodes every complete record from r in order.
// Line terminators ("\n" or "\r\n") are stripped, then each glyph row must be
// exactly 27 characters; rows are never joined and re-split.
// On any error the returned slice is nil.
func Read(r io.Reader) ([]account.Number, error) {
	var (
		numbers []account.Number
		rows    = make([]string, 0, grid.Rows)
		line    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		if line%LinesPerRecord == 0 {
			// Separator line: decode the rows gathered so far.
			idx := line/LinesPerRecord - 1
			n, err := account.DecodeRows(rows)
			if err != nil {
				return nil, fmt.Errorf("%s: record %d (lines %d-%d): %w: %w",
					methodRead, idx, line-LinesPerRecord+1, line-1, ErrMalformedRecord, err)
			}
			numbers = append(numbers, n)
			rows = rows[:0]
			continue
		}
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: line %d: %w: %w", methodRead, line+1, ErrRead, err)
	}

	return numbers, nil
}

// ReadFile opens path and decodes it with Read. The file is closed on every
// return path.
func ReadFile(path string) (numbers []account.Number, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w: %w", methodReadFile, path, ErrRead, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			numbers, err = nil, fmt.Errorf("%s(%q): close: %w: %w", methodReadFile, path, ErrRead, cerr)
		}
	}()

	return Read(f)
}
