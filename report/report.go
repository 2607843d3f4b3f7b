package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/bankocr/account"
	"github.com/katalvlaran/bankocr/record"
)

const (
	methodBuild   = "Build"
	methodWrite   = "Write"
	methodWriteTo = "WriteTo"
)

// Entry is one line of a report.
type Entry struct {
	Number string // rendered account number
	Status Status
}

// String formats the entry as persisted, without the newline.
func (e Entry) String() string {
	return e.Number + " " + string(e.Status)
}

// Report is an ordered mapping from rendered account number to Status.
// The zero value is not usable; call New.
type Report struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty report.
func New() *Report {
	return &Report{index: make(map[string]int)}
}

// FromNumbers classifies each number in order.
func FromNumbers(numbers []account.Number) *Report {
	r := New()
	for _, n := range numbers {
		r.Add(n)
	}
	return r
}

// Add classifies n, records it under its rendered form and returns the status.
func (r *Report) Add(n account.Number) Status {
	s := Classify(n)
	r.Set(n.String(), s)
	return s
}

// Set records status s for key. An existing key keeps its position.
func (r *Report) Set(key string, s Status) {
	if i, ok := r.index[key]; ok {
		r.entries[i].Status = s
		return
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Number: key, Status: s})
}

// Status returns the status recorded for key.
func (r *Report) Status(key string) (Status, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.entries[i].Status, true
}

// Len returns the number of distinct keys.
func (r *Report) Len() int { return len(r.entries) }

// Entries returns a copy of the entries in insertion order.
func (r *Report) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Counts tallies entries per status.
func (r *Report) Counts() map[Status]int {
	out := make(map[Status]int, 3)
	for _, e := range r.entries {
		out[e.Status]++
	}
	return out
}

// WriteTo writes one "<number> <status>" line per entry.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, e := range r.entries {
		n, err := fmt.Fprintf(bw, "%s\n", e)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("%s: %w: %w", methodWriteTo, ErrWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("%s: %w: %w", methodWriteTo, ErrWrite, err)
	}
	return total, nil
}

// Write persists r to path, replacing any existing file.
func Write(path string, r *Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s(%q): %w: %w", methodWrite, path, ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s(%q): close: %w: %w", methodWrite, path, ErrWrite, cerr)
		}
	}()

	if _, err := r.WriteTo(f); err != nil {
		return fmt.Errorf("%s(%q): %w", methodWrite, path, err)
	}
	return nil
}

// Build reads the records in path and classifies them. When persist is true
// the report is written to the configured output (DefaultOutput unless
// WithOutput is given) and nil is returned; otherwise the report is returned.
// Nothing is written if reading fails.
func Build(path string, persist bool, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	numbers, err := record.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	r := FromNumbers(numbers)
	if !persist {
		return r, nil
	}
	if err := Write(cfg.output, r); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return nil, nil
}
