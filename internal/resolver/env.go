package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Env exposes the host facts that candidate predicates and paths depend on.
type Env struct {
	GOOS       string
	Getenv     func(string) string
	HomeDir    func() (string, error)
	Executable func() (string, error)
}

// HostEnv returns the Env of the running process.
func HostEnv() Env {
	return Env{
		GOOS:       runtime.GOOS,
		Getenv:     os.Getenv,
		HomeDir:    os.UserHomeDir,
		Executable: os.Executable,
	}
}

// ProgramDir returns the directory holding the running binary, with
// symlinks resolved where possible.
func (e Env) ProgramDir() (string, error) {
	exe, err := e.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// IsWindows reports whether the policy for the Windows-like platform applies.
func (e Env) IsWindows() bool { return e.GOOS == "windows" }
