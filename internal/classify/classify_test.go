package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dwsmith1983/arrival/pkg/types"
)

func at(h, m, s int) time.Time {
	return time.Date(2025, 3, 1, h, m, s, 0, time.Local)
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		t      time.Time
		status types.Status
		color  types.Color
	}{
		{"midnight", at(0, 0, 0), types.StatusOK, types.ColorGreen},
		{"early", at(7, 30, 0), types.StatusOK, types.ColorGreen},
		{"last OK second", at(8, 49, 59), types.StatusOK, types.ColorGreen},
		{"first warning", at(8, 50, 0), types.StatusWarning, types.ColorYellow},
		{"last warning second", at(8, 59, 59), types.StatusWarning, types.ColorYellow},
		{"nine sharp", at(9, 0, 0), types.StatusError, types.ColorRed},
		{"late", at(13, 5, 0), types.StatusError, types.ColorRed},
		{"end of day", at(23, 59, 59), types.StatusError, types.ColorRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := Classify(tt.t)
			assert.Equal(t, tt.status, s)
			assert.Equal(t, tt.color, c)
		})
	}
}

func TestClassify_EveryMinute(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s, c := Classify(at(h, m, 30))
			want := types.StatusError
			switch {
			case h < 8 || (h == 8 && m < 50):
				want = types.StatusOK
			case h == 8:
				want = types.StatusWarning
			}
			assert.Equal(t, want, s, "%02d:%02d", h, m)
			assert.Equal(t, types.ColorOf(want), c, "%02d:%02d", h, m)
		}
	}
}

func TestClassify_IgnoresSeconds(t *testing.T) {
	s1, _ := Classify(at(8, 49, 0))
	s2, _ := Classify(at(8, 49, 59))
	assert.Equal(t, s1, s2)
}
