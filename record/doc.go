// Package record reads scanner output files: stacked records of four lines,
// three glyph rows followed by a separator line whose content is ignored.
//
// Each record is decoded with account.Decode, so the result is one
// account.Number per record in file order. Trailing lines that do not make a
// full record are dropped without error.
//
// Errors:
//
//   - ErrRead: the source could not be opened or read. No numbers are returned.
//   - ErrMalformedRecord: a record's glyph rows are not 3×27. The error names
//     the 0-based record index and also matches account.ErrBadRecord.
package record
