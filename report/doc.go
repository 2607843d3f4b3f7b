// Package report classifies decoded account numbers and persists the summary.
//
// Classification, in order:
//
//   - any illegible digit      → StatusIllegible ("ILL")
//   - checksum not divisible   → StatusError ("ERR")
//   - otherwise                → StatusOK (persisted as the empty string)
//
// A Report is keyed by the rendered number (illegible digits shown as '?').
// It keeps first-insertion order; adding a key that is already present
// replaces its status in place, so the last occurrence wins.
//
// Persisted form, one line per entry:
//
//	<rendered number> <status>\n
package report
