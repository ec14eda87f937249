package commands

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/fatih/color"

	"github.com/dwsmith1983/arrival/internal/arrivallog"
	"github.com/dwsmith1983/arrival/internal/config"
	"github.com/dwsmith1983/arrival/internal/errlog"
	"github.com/dwsmith1983/arrival/pkg/types"
)

// runDiag prints what a default run would do. Resolution still probes each
// candidate, but no arrival row is written. A resolution failure is reported
// in the output rather than returned.
func runDiag(out io.Writer, deps Deps, cfg *config.Config, logger *slog.Logger) error {
	bold := color.New(color.Bold)
	env := deps.Env

	home, err := env.HomeDir()
	if err != nil {
		home = "<unavailable: " + err.Error() + ">"
	}
	errorLog := "<unavailable>"
	programDir, err := env.ProgramDir()
	if err != nil {
		programDir = "<unavailable: " + err.Error() + ">"
	} else {
		errorLog = errlog.NewSink(programDir).Path()
	}
	source := cfg.Source
	if source == "" {
		source = "<defaults>"
	}

	_, _ = bold.Fprintln(out, "Environment:")
	fmt.Fprintf(out, "  Platform:  %s/%s\n", env.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  Home:      %s\n", home)
	fmt.Fprintf(out, "  Program:   %s\n", programDir)
	fmt.Fprintf(out, "  User:      %s\n", deps.Identity.User())
	fmt.Fprintf(out, "  Machine:   %s\n", deps.Identity.Machine())
	fmt.Fprintf(out, "  Config:    %s\n", source)
	fmt.Fprintln(out)

	res := deps.newResolver(cfg, logger)
	_, _ = bold.Fprintln(out, "Candidates:")
	for _, p := range res.Paths() {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprintln(out)

	_, _ = bold.Fprintln(out, "Resolution:")
	dir, err := res.Resolve()
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintf(out, "  Directory: <none> (%v)\n", err)
	} else {
		fmt.Fprintf(out, "  Directory: %s\n", dir)
		fmt.Fprintf(out, "  Target:    %s\n", arrivallog.YearFile(dir, deps.Now().Year()))
	}
	fmt.Fprintf(out, "  Schema:    v%d %s\n", types.SchemaFull, types.HeaderFull)
	fmt.Fprintf(out, "  Error log: %s\n", errorLog)
	return nil
}
