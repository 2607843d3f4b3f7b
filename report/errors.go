package report

import "errors"

// ErrWrite indicates the report could not be persisted.
var ErrWrite = errors.New("report: write failed")
