package report

import "github.com/katalvlaran/bankocr/account"

// Status is the persisted status code of one account number.
type Status string

const (
	// StatusOK marks a legible number with a valid checksum.
	StatusOK Status = ""
	// StatusError marks a legible number whose checksum fails.
	StatusError Status = "ERR"
	// StatusIllegible marks a number with at least one unreadable digit.
	StatusIllegible Status = "ILL"
)

// Label returns a display name; StatusOK, persisted empty, shows as "OK".
func (s Status) Label() string {
	if s == StatusOK {
		return "OK"
	}
	return string(s)
}

// Classify derives the status of n. Illegible numbers never reach the checksum.
func Classify(n account.Number) Status {
	l, ok := n.Legible()
	if !ok {
		return StatusIllegible
	}
	if !account.IsChecksumValid(l) {
		return StatusError
	}
	return StatusOK
}
