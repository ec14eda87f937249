// Package arrivallog appends arrival records to per-year CSV files.
package arrivallog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dwsmith1983/arrival/internal/classify"
	"github.com/dwsmith1983/arrival/pkg/types"
)

// Identity supplies the user and machine names for a record.
type Identity interface {
	User() string
	Machine() string
}

// YearFile returns the path of the yearly file for year under dir.
func YearFile(dir string, year int) string {
	return filepath.Join(dir, "arrival_"+strconv.Itoa(year)+".csv")
}

// Writer appends arrival records under a base directory.
type Writer struct {
	dir      string
	identity Identity
	logger   *slog.Logger
}

// NewWriter creates a Writer for dir.
func NewWriter(dir string, identity Identity, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, identity: identity, logger: logger}
}

// Record builds the record for an arrival at now without writing it.
func (w *Writer) Record(now time.Time) types.Record {
	status, color := classify.Classify(now)
	return types.Record{
		At:      now,
		User:    w.identity.User(),
		Machine: w.identity.Machine(),
		Status:  status,
		Color:   color,
	}
}

// Append writes one record for now to the yearly file, creating the file
// with its header first if needed. It returns the file path and the record
// written. No lock is taken; overlapping invocations may interleave rows.
func (w *Writer) Append(now time.Time) (string, types.Record, error) {
	path := YearFile(w.dir, now.Year())
	rec := w.Record(now)
	row := rec.Row()

	if err := ensureHeader(path); err != nil {
		return "", types.Record{}, err
	}
	if err := appendLine(path, row); err != nil {
		return "", types.Record{}, fmt.Errorf("appending to %s: %w", path, err)
	}

	w.logger.Debug("arrival recorded", "path", path, "status", rec.Status)
	return path, rec, nil
}

// ensureHeader creates path with the canonical header if it does not exist.
func ensureHeader(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(types.HeaderFull + "\n"); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	return f.Close()
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(line); err != nil {
		return err
	}
	return f.Close()
}
