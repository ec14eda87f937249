package resolver

import (
	"io/fs"
	"os"
)

// FS is the subset of filesystem operations used to probe a candidate.
type FS interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Remove(name string) error
}

// OSFS implements FS on the host filesystem.
type OSFS struct{}

// MkdirAll creates path and any missing parents.
func (OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

// WriteFile writes data to name, creating or truncating it.
func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Remove deletes name.
func (OSFS) Remove(name string) error { return os.Remove(name) }
