package record

import "errors"

var (
	// ErrRead indicates the input could not be opened or read.
	ErrRead = errors.New("record: read failed")
	// ErrMalformedRecord indicates a record whose rows do not form a 3×27 grid.
	ErrMalformedRecord = errors.New("record: malformed record")
)
