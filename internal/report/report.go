// Package report concatenates yearly arrival files under a single header.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/dwsmith1983/arrival/internal/arrivallog"
	"github.com/dwsmith1983/arrival/pkg/types"
)

// Reader scans the yearly files for an inclusive range of years.
type Reader struct {
	dir       string
	firstYear int
	lastYear  int
	logger    *slog.Logger
}

// NewReader creates a Reader over dir for years first through last.
func NewReader(dir string, first, last int, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{dir: dir, firstYear: first, lastYear: last, logger: logger}
}

// WriteTo emits the unified header followed by every non-header row of each
// existing yearly file, in year order. Missing years are skipped.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	if _, err := io.WriteString(cw, types.HeaderFull+"\n"); err != nil {
		return cw.n, err
	}
	for year := r.firstYear; year <= r.lastYear; year++ {
		if err := r.copyYear(cw, year); err != nil {
			return cw.n, err
		}
	}
	return cw.n, bw.Flush()
}

func (r *Reader) copyYear(w io.Writer, year int) error {
	path := arrivallog.YearFile(r.dir, year)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("no data for year", "year", year)
			return nil
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, types.HeaderMarker) {
			continue
		}
		if _, err := io.WriteString(w, Normalize(line)+"\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Normalize maps a row onto the canonical column layout by sniffing its
// column count. Reduced-schema rows gain empty ISO and Machine columns.
// Canonical rows and rows of any other shape are returned unchanged.
func Normalize(line string) string {
	fields := strings.Split(line, ",")
	if len(fields) != types.SchemaReduced.Columns() {
		return line
	}
	date, clock, user, status, color := fields[0], fields[1], fields[2], fields[3], fields[4]
	return strings.Join([]string{date, clock, "", user, "", status, color}, ",")
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
