// Package commands implements the arrival command line.
package commands

import (
	"io"
	"log/slog"
	"time"

	"github.com/dwsmith1983/arrival/internal/config"
	"github.com/dwsmith1983/arrival/internal/identity"
	"github.com/dwsmith1983/arrival/internal/resolver"
)

// Deps are the host facilities the commands depend on.
type Deps struct {
	Now        func() time.Time
	Env        resolver.Env
	FS         resolver.FS
	Identity   identity.Lookup
	LoadConfig func() (*config.Config, error)
}

// HostDeps returns Deps backed by the running process.
func HostDeps() Deps {
	return Deps{
		Now:        time.Now,
		Env:        resolver.HostEnv(),
		FS:         resolver.OSFS{},
		Identity:   identity.Host(),
		LoadConfig: config.Load,
	}
}

func (d Deps) newResolver(cfg *config.Config, logger *slog.Logger) *resolver.Resolver {
	return &resolver.Resolver{
		Candidates: resolver.DefaultCandidates(),
		FS:         d.FS,
		Env:        d.Env,
		Folder:     cfg.Folder,
		Logger:     logger,
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
