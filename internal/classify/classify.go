// Package classify maps an arrival time to a status band.
package classify

import (
	"time"

	"github.com/dwsmith1983/arrival/pkg/types"
)

// clock is an (hour, minute) pair compared lexicographically.
type clock struct{ hour, minute int }

func (c clock) before(o clock) bool {
	if c.hour != o.hour {
		return c.hour < o.hour
	}
	return c.minute < o.minute
}

// Band cutoffs. Arrivals strictly before okCutoff are OK, strictly before
// warnCutoff are WARNING, anything later is ERROR.
var (
	okCutoff   = clock{8, 50}
	warnCutoff = clock{9, 0}
)

// Classify returns the status and color for t. Seconds are ignored.
func Classify(t time.Time) (types.Status, types.Color) {
	hm := clock{t.Hour(), t.Minute()}
	var s types.Status
	switch {
	case hm.before(okCutoff):
		s = types.StatusOK
	case hm.before(warnCutoff):
		s = types.StatusWarning
	default:
		s = types.StatusError
	}
	return s, types.ColorOf(s)
}
