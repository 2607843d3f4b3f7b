// Package bankocr reads account numbers from bank scanner output, where each
// digit is drawn with pipes and underscores on a 3x3 character cell.
//
// A record is three rows of 27 characters (nine cells) plus a separator line:
//
//	    _  _  _  _  _     _
//	|_||_|| || ||_   |  |  ||_
//	  | _||_||_||_|  |  |  | _|
//
// decodes to 490067715.
//
// Packages, leaf first:
//
//	glyph/   — fixed cell pattern table, Digit (legible 0..9 or Illegible)
//	grid/    — validated 3x27 grid, sliced into nine cell patterns
//	account/ — Decode, Number / Legible, mod-11 checksum
//	record/  — 4-line record reader over files and io.Reader
//	report/  — OK / ERR / ILL classification and the status summary file
//
// The bankocr command (cmd/bankocr) runs the whole pipeline:
//
//	go run ./cmd/bankocr -input entries.txt -output accounts_status.txt
package bankocr
