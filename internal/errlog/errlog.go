// Package errlog records uncaught failures to an append-only file that sits
// beside the program binary.
package errlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the error log's name within the program directory.
const FileName = "arrival_error.log"

// Sink appends one line per failure to a file.
type Sink struct {
	path string
	now  func() time.Time
}

// NewSink creates a Sink writing to FileName under dir.
func NewSink(dir string) *Sink {
	return &Sink{path: filepath.Join(dir, FileName), now: time.Now}
}

// Path returns the file the sink appends to.
func (s *Sink) Path() string { return s.path }

// Record appends a single line describing err. A nil err is ignored.
func (s *Sink) Record(err error) error {
	if err == nil {
		return nil
	}

	f, ferr := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if ferr != nil {
		return fmt.Errorf("opening error log: %w", ferr)
	}
	defer func() { _ = f.Close() }()

	if _, werr := f.WriteString(Line(s.now(), err)); werr != nil {
		return fmt.Errorf("writing error log: %w", werr)
	}
	return f.Close()
}

// Line formats err as "<RFC3339 time>\t<kind>\t<message>\n". Newlines in the
// message are folded so each failure occupies exactly one line.
func Line(at time.Time, err error) string {
	msg := strings.Join(strings.Fields(strings.ReplaceAll(err.Error(), "\n", "; ")), " ")
	return fmt.Sprintf("%s\t%s\t%s\n", at.Format(time.RFC3339), Kind(err), msg)
}

// Kind names the type of err, looking through fmt.Errorf wrapping so that
// "reading x: %w" reports the wrapped error's type.
func Kind(err error) string {
	for {
		kind := fmt.Sprintf("%T", err)
		if kind != "*fmt.wrapError" && kind != "*fmt.wrapErrors" {
			return kind
		}
		var next error
		switch w := err.(type) {
		case interface{ Unwrap() error }:
			next = w.Unwrap()
		case interface{ Unwrap() []error }:
			if errs := w.Unwrap(); len(errs) > 0 {
				next = errs[0]
			}
		}
		if next == nil {
			return kind
		}
		err = next
	}
}
