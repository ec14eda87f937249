// Package resolver picks the base directory that arrival files are written to.
//
// The policy is an ordered list of candidates. Each candidate that applies to
// the host is probed by creating the directory, writing a small file and
// removing it again. The first candidate to pass wins.
package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// ErrNoWritableDir is returned when every candidate fails its probe.
var ErrNoWritableDir = errors.New("no writable directory")

// PublicDir is the shared fallback on the Windows-like platform.
const PublicDir = `C:\Users\Public`

const probeName = ".arrival_probe"

// Candidate is one entry of the resolution policy.
type Candidate struct {
	Name    string
	Applies func(Env) bool
	// Parent returns the directory the configured folder is created under.
	Parent func(Env) (string, error)
}

// DefaultCandidates returns the resolution policy in priority order.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{
			Name:    "userprofile",
			Applies: func(e Env) bool { return e.IsWindows() && e.Getenv("USERPROFILE") != "" },
			Parent:  func(e Env) (string, error) { return e.Getenv("USERPROFILE"), nil },
		},
		{
			Name:    "public",
			Applies: Env.IsWindows,
			Parent:  func(Env) (string, error) { return PublicDir, nil },
		},
		{
			Name:    "home",
			Applies: always,
			Parent:  func(e Env) (string, error) { return e.HomeDir() },
		},
		{
			Name:    "program",
			Applies: always,
			Parent:  Env.ProgramDir,
		},
	}
}

func always(Env) bool { return true }

// Resolver probes candidates against a filesystem.
type Resolver struct {
	Candidates []Candidate
	FS         FS
	Env        Env
	Folder     string
	Logger     *slog.Logger
}

// New creates a Resolver using the default policy on the host filesystem.
func New(folder string, logger *slog.Logger) *Resolver {
	return &Resolver{
		Candidates: DefaultCandidates(),
		FS:         OSFS{},
		Env:        HostEnv(),
		Folder:     folder,
		Logger:     logger,
	}
}

// Resolve returns the first candidate directory confirmed writable.
func (r *Resolver) Resolve() (string, error) {
	var failures []error
	for _, c := range r.Candidates {
		if c.Applies != nil && !c.Applies(r.Env) {
			continue
		}
		dir, err := r.try(c)
		if err == nil {
			return dir, nil
		}
		r.logger().Debug("candidate rejected", "candidate", c.Name, "error", err)
		failures = append(failures, fmt.Errorf("%s: %w", c.Name, err))
	}
	return "", fmt.Errorf("%w: %w", ErrNoWritableDir, errors.Join(failures...))
}

// Paths returns candidate paths in policy order for the current host without
// probing them. Candidates whose parent cannot be determined are omitted.
func (r *Resolver) Paths() []string {
	var paths []string
	for _, c := range r.Candidates {
		if c.Applies != nil && !c.Applies(r.Env) {
			continue
		}
		parent, err := c.Parent(r.Env)
		if err != nil || parent == "" {
			continue
		}
		paths = append(paths, filepath.Join(parent, r.Folder))
	}
	return paths
}

func (r *Resolver) try(c Candidate) (string, error) {
	parent, err := c.Parent(r.Env)
	if err != nil {
		return "", err
	}
	if parent == "" {
		return "", errors.New("empty parent directory")
	}
	dir := filepath.Join(parent, r.Folder)
	if err := r.probe(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func (r *Resolver) probe(dir string) error {
	if err := r.FS.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	probe := filepath.Join(dir, probeName)
	if err := r.FS.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("writing probe: %w", err)
	}
	if err := r.FS.Remove(probe); err != nil {
		return fmt.Errorf("removing probe: %w", err)
	}
	return nil
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
