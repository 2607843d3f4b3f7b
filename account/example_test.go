package account_test

import (
	"fmt"

	"github.com/katalvlaran/bankocr/account"
)

// ExampleDecode decodes one record and validates its checksum.
func ExampleDecode() {
	text := "    _  _     _  _  _  _  _ " +
		"  | _| _||_||_ |_   ||_||_|" +
		"  ||_  _|  | _||_|  ||_| _|"

	n, err := account.Decode(text)
	if err != nil {
		fmt.Println(err)
		return
	}
	l, ok := n.Legible()
	fmt.Println(n, ok, account.IsChecksumValid(l))

	// Output:
	// 123456789 true true
}
