package main

import (
	"errors"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"github.com/spf13/cobra"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one assignment pass and exit",
	Long: `Run one assignment pass over the lookback window and exit.
Exits non-zero when the run is aborted or some orders could not be processed,
so it can be driven by cron (hourly, 08-19).`,
	RunE: runOnce,
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "classify orders without changing them")
}

func runOnce(cmd *cobra.Command, _ []string) error {
	return withApp(cmd.Context(), func(a *app) error {
		report, err := a.uc.Run(cmd.Context(), dryRun)
		if err != nil && !errors.Is(err, entities.ErrRunIncomplete) {
			a.log.Errorw("run aborted", "error", err)
			return err
		}
		a.log.Infow("run report",
			"window_start", report.WindowStart,
			"dry_run", report.DryRun,
			"applied", len(report.Applied),
			"skipped", len(report.Skipped),
			"failed", len(report.Failed),
		)
		return err
	})
}
