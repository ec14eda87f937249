package types

import (
	"strings"
	"time"
)

// Date and time layouts used in arrival rows.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Record is a single arrival event.
type Record struct {
	At      time.Time
	User    string
	Machine string
	Status  Status
	Color   Color
}

// Fields returns the record as canonical (SchemaFull) column values.
func (r Record) Fields() []string {
	return []string{
		r.At.Format(DateLayout),
		r.At.Format(TimeLayout),
		r.At.Format(time.RFC3339),
		r.User,
		r.Machine,
		string(r.Status),
		string(r.Color),
	}
}

// Row returns the record as a comma-joined line with a trailing newline.
// Values are not quoted or escaped.
func (r Record) Row() string {
	return strings.Join(r.Fields(), ",") + "\n"
}
