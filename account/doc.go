// Package account turns a scanned record into a nine-digit account number and
// validates it.
//
// Decode runs the record through grid.Split and looks each cell up in the
// glyph table; a cell that matches nothing becomes glyph.Illegible rather
// than an error. Only a record of the wrong shape fails.
//
// Number may hold illegible digits. Legible holds only real values and is the
// one type IsChecksumValid accepts, so an illegible number has to be filtered
// through Number.Legible before it can be checked:
//
//	n, err := account.Decode(text)
//	if l, ok := n.Legible(); ok {
//		fmt.Println(account.IsChecksumValid(l))
//	}
//
// Checksum: (d1 + 2*d2 + 3*d3 + ... + 9*d9) mod 11 == 0, where d1 is the
// rightmost digit.
package account
