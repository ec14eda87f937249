// Package types defines the public domain types for arrival logging.
package types

// Status is the classification outcome of an arrival time.
type Status string

// Status values enumerate the arrival classification bands.
const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
)

// Color is the display color paired with a Status.
type Color string

// Color values correspond 1:1 with Status values.
const (
	ColorGreen  Color = "Green"
	ColorYellow Color = "Yellow"
	ColorRed    Color = "Red"
)

// ColorOf returns the color paired with s. Unknown statuses map to Red.
func ColorOf(s Status) Color {
	switch s {
	case StatusOK:
		return ColorGreen
	case StatusWarning:
		return ColorYellow
	default:
		return ColorRed
	}
}

// SchemaVersion identifies the column layout of a yearly file.
type SchemaVersion int

// SchemaVersion values. SchemaFull is written by this program; SchemaReduced
// is only ever read.
const (
	SchemaReduced SchemaVersion = 1
	SchemaFull    SchemaVersion = 2
)

// Header lines for each schema version.
const (
	HeaderReduced = "Date,Time,User,Status,Color"
	HeaderFull    = "Date,Time,ISO,User,Machine,Status,Color"
)

// HeaderMarker prefixes every header line regardless of schema version.
const HeaderMarker = "Date,"

// Header returns the header line for v.
func (v SchemaVersion) Header() string {
	if v == SchemaReduced {
		return HeaderReduced
	}
	return HeaderFull
}

// Columns returns the number of columns in v.
func (v SchemaVersion) Columns() int {
	if v == SchemaReduced {
		return 5
	}
	return 7
}
