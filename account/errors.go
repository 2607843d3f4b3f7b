package account

import "errors"

var (
	// ErrBadRecord indicates record text that cannot be split into nine cells.
	ErrBadRecord = errors.New("account: malformed record")
	// ErrBadNumber indicates a textual account number that is not nine of 0-9 or '?'.
	ErrBadNumber = errors.New("account: malformed account number")
)
