package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dwsmith1983/arrival/internal/config"
	"github.com/dwsmith1983/arrival/internal/report"
)

func runReport(out io.Writer, deps Deps, cfg *config.Config, logger *slog.Logger) error {
	dir, err := deps.newResolver(cfg, logger).Resolve()
	if err != nil {
		return fmt.Errorf("resolving log directory: %w", err)
	}

	r := report.NewReader(dir, cfg.Report.FirstYear, cfg.Report.LastYear, logger)
	if _, err := r.WriteTo(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
