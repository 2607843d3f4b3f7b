package account

import (
	"fmt"

	"github.com/katalvlaran/bankocr/glyph"
)

// checksumModulus is the divisor of the weighted digit sum.
const checksumModulus = 11

// Checksum returns the weighted digit sum of l modulo 11. The rightmost digit
// has weight 1 and each step left adds one, so l[0] has weight 9.
// A value above 9 returns glyph.ErrUnknownDigit.
func Checksum(l Legible) (int, error) {
	sum := 0
	for i, v := range l {
		if v > 9 {
			return 0, fmt.Errorf("Checksum: position %d value %d: %w", i, v, glyph.ErrUnknownDigit)
		}
		sum += (Length - i) * int(v)
	}
	return sum % checksumModulus, nil
}

// IsChecksumValid reports whether the weighted digit sum of l is divisible by 11.
// A number holding a value above 9 is never valid.
func IsChecksumValid(l Legible) bool {
	sum, err := Checksum(l)
	return err == nil && sum == 0
}
