// Package grid reshapes a scanned record into a rectangular character grid and
// slices it into the nine 3x3 cells of an account number.
//
// What:
//
//   - Grid wraps equal-length text rows and is immutable once built.
//   - FromRecord reshapes an 81-character stream into 3 rows of 27 columns.
//   - FromRows checks already-split lines, each of which must be 27 columns.
//   - Cells returns the nine glyph.Pattern values, most significant first.
//
// Shape is validated up front: a record that does not reshape into exactly
// 3x27 fails with ErrBadShape instead of being truncated or misaligned.
//
// Complexity:
//
//   - New, FromRecord: O(W×H) time and memory.
//   - Cells:           O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadShape: grid is not Rows×Columns, or the stream is not RecordSize long.
package grid
