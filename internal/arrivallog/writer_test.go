package arrivallog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwsmith1983/arrival/pkg/types"
)

type fixedIdentity struct{ user, machine string }

func (f fixedIdentity) User() string    { return f.user }
func (f fixedIdentity) Machine() string { return f.machine }

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestYearFile(t *testing.T) {
	assert.Equal(t, filepath.Join("base", "arrival_2025.csv"), YearFile("base", 2025))
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, fixedIdentity{"alice", "DESK-01"}, nil)
	now := time.Date(2025, 3, 1, 8, 49, 59, 0, time.Local)

	path, rec, err := w.Append(now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "arrival_2025.csv"), path)
	assert.Equal(t, types.StatusOK, rec.Status)
	assert.Equal(t, types.ColorGreen, rec.Color)

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, types.HeaderFull, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2025-03-01,08:49:59,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ",alice,DESK-01,OK,Green"), lines[1])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 7)
	iso, err := time.Parse(time.RFC3339, fields[2])
	require.NoError(t, err)
	assert.True(t, iso.Equal(now))
}

func TestAppend_HeaderWrittenOnce(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, fixedIdentity{"alice", ""}, nil)

	_, _, err := w.Append(time.Date(2025, 3, 1, 8, 30, 0, 0, time.Local))
	require.NoError(t, err)
	path, _, err := w.Append(time.Date(2025, 3, 2, 8, 55, 0, 0, time.Local))
	require.NoError(t, err)

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	headers := 0
	for _, l := range lines {
		if strings.HasPrefix(l, types.HeaderMarker) {
			headers++
		}
	}
	assert.Equal(t, 1, headers)
	assert.True(t, strings.HasPrefix(lines[1], "2025-03-01,"))
	assert.True(t, strings.HasPrefix(lines[2], "2025-03-02,"))
	assert.True(t, strings.HasSuffix(lines[2], ",WARNING,Yellow"))
}

func TestAppend_NineOClockIsError(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, fixedIdentity{"alice", ""}, nil)

	path, rec, err := w.Append(time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, types.StatusError, rec.Status)
	assert.Equal(t, types.ColorRed, rec.Color)

	lines := readLines(t, path)
	assert.True(t, strings.HasSuffix(lines[1], ",ERROR,Red"))
}

func TestAppend_SeparateFilePerYear(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, fixedIdentity{"alice", ""}, nil)

	p1, _, err := w.Append(time.Date(2025, 12, 31, 8, 0, 0, 0, time.Local))
	require.NoError(t, err)
	p2, _, err := w.Append(time.Date(2026, 1, 2, 8, 0, 0, 0, time.Local))
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.Len(t, readLines(t, p1), 2)
	assert.Len(t, readLines(t, p2), 2)
}

func TestAppend_ExistingFileKeepsContent(t *testing.T) {
	dir := t.TempDir()
	path := YearFile(dir, 2025)
	legacy := types.HeaderReduced + "\n2025-01-02,08:10:00,bob,OK,Green\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	w := NewWriter(dir, fixedIdentity{"alice", ""}, nil)
	_, _, err := w.Append(time.Date(2025, 1, 3, 8, 10, 0, 0, time.Local))
	require.NoError(t, err)

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t, types.HeaderReduced, lines[0])
	assert.Equal(t, "2025-01-02,08:10:00,bob,OK,Green", lines[1])
}

func TestAppend_MissingDirectory(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "absent"), fixedIdentity{"alice", ""}, nil)
	_, _, err := w.Append(time.Now())
	assert.Error(t, err)
}
