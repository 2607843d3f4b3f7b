// Package glyph holds the fixed table of seven-segment style digit cells used
// by bank account scanners.
//
// What:
//
//   - A cell is a 3x3 block of ' ', '_' and '|' characters.
//   - Pattern is that block flattened row-major into exactly nine characters.
//   - Digit is a tagged value: either a legible 0..9 or Illegible.
//
// Table (rows shown one under another):
//
//	 _     _  _     _  _  _  _  _
//	| |  | _| _||_||_ |_   ||_||_|
//	|_|  ||_  _|  | _||_|  ||_| _|
//
// The table is built once at package init and never mutated. Lookup and
// Render are pure and safe for concurrent use.
//
// Errors:
//
//   - ErrBadPattern: a pattern is not nine characters of ' ', '_' or '|'.
//   - ErrUnknownDigit: Render/Of received a value outside 0..9.
package glyph
