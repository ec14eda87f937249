package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/dwsmith1983/arrival/internal/arrivallog"
	"github.com/dwsmith1983/arrival/internal/config"
	"github.com/dwsmith1983/arrival/pkg/types"
)

func runLog(out io.Writer, deps Deps, cfg *config.Config, logger *slog.Logger) error {
	dir, err := deps.newResolver(cfg, logger).Resolve()
	if err != nil {
		return fmt.Errorf("resolving log directory: %w", err)
	}

	w := arrivallog.NewWriter(dir, deps.Identity, logger)
	path, rec, err := w.Append(deps.Now())
	if err != nil {
		return fmt.Errorf("recording arrival: %w", err)
	}

	fmt.Fprintln(out, path)
	_, _ = statusColor(rec.Status).Fprintf(out, "%s %s %s\n",
		rec.At.Format(types.TimeLayout), rec.Status, rec.Color)
	return nil
}

func statusColor(s types.Status) *color.Color {
	switch s {
	case types.StatusOK:
		return color.New(color.FgGreen)
	case types.StatusWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
