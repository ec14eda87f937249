package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dwsmith1983/arrival/internal/errlog"
)

// NewRootCmd creates the arrival command. With no flags it records one
// arrival; --report and --diag select the other modes.
func NewRootCmd(version string, deps Deps) *cobra.Command {
	var report, diag bool

	cmd := &cobra.Command{
		Use:   "arrival",
		Short: "Record today's arrival time to a yearly CSV log",
		Long: `arrival appends one timestamped row to arrival_<year>.csv and classifies it:
before 08:50 is OK (Green), before 09:00 is WARNING (Yellow), anything later
is ERROR (Red). It is meant to be run once a day by a scheduler.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)

			switch {
			case report:
				return runReport(cmd.OutOrStdout(), deps, cfg, logger)
			case diag:
				return runDiag(cmd.OutOrStdout(), deps, cfg, logger)
			default:
				return runLog(cmd.OutOrStdout(), deps, cfg, logger)
			}
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "Print all rows of the configured year range under one header")
	cmd.Flags().BoolVar(&diag, "diag", false, "Print resolved paths and environment without recording an arrival")
	cmd.MarkFlagsMutuallyExclusive("report", "diag")
	return cmd
}

// Execute runs cmd and, on failure, appends the error to the error log in
// the program directory before returning it. A failure to write the error
// log is joined to the returned error.
func Execute(cmd *cobra.Command, deps Deps) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}

	dir, derr := deps.Env.ProgramDir()
	if derr != nil {
		return errors.Join(err, fmt.Errorf("recording failure: %w", derr))
	}
	if rerr := errlog.NewSink(dir).Record(err); rerr != nil {
		return errors.Join(err, fmt.Errorf("recording failure: %w", rerr))
	}
	return err
}
