package cli

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/bankocr/record"
	"github.com/katalvlaran/bankocr/report"
)

// Run decodes cfg.Input, prints the numbers and their checksum validity to
// out, and persists the status summary to cfg.Output (or prints it when
// cfg.DryRun is set). Any read error aborts before the summary is written.
func Run(cfg Config, out io.Writer, logger *zap.Logger) error {
	if out == nil {
		return errors.New("output writer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("input", cfg.Input))

	numbers, err := record.ReadFile(cfg.Input)
	if err != nil {
		logger.Error("read records", zap.Error(err))
		return fmt.Errorf("read records: %w", err)
	}
	logger.Info("records decoded", zap.Int("records", len(numbers)))

	if _, err := fmt.Fprintln(out, "Extracted account numbers."); err != nil {
		return err
	}
	for _, n := range numbers {
		if _, err := fmt.Fprintln(out, n); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(out, "Account number validity status"); err != nil {
		return err
	}
	r := report.New()
	for i, n := range numbers {
		status := r.Add(n)
		logger.Debug("record classified",
			zap.Int("index", i),
			zap.Stringer("number", n),
			zap.String("status", status.Label()),
		)
		if _, err := fmt.Fprintln(out, status == report.StatusOK); err != nil {
			return err
		}
	}

	counts := r.Counts()
	fields := []zap.Field{
		zap.Int("entries", r.Len()),
		zap.Int("ok", counts[report.StatusOK]),
		zap.Int("err", counts[report.StatusError]),
		zap.Int("ill", counts[report.StatusIllegible]),
	}

	if cfg.DryRun {
		if _, err := fmt.Fprintln(out, "Result summary of account numbers"); err != nil {
			return err
		}
		if _, err := r.WriteTo(out); err != nil {
			return err
		}
		logger.Info("report printed", fields...)
		return nil
	}

	if err := report.Write(cfg.Output, r); err != nil {
		logger.Error("write report", zap.String("output", cfg.Output), zap.Error(err))
		return fmt.Errorf("write report: %w", err)
	}
	if _, err := fmt.Fprintf(out, "Result summary of account numbers stored in %s\n", cfg.Output); err != nil {
		return err
	}
	logger.Info("report written", append(fields, zap.String("output", cfg.Output))...)

	return nil
}
