package main

import (
	"github.com/spf13/cobra"
)

func runBatch(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()

	db, err := openLedger(ctx, cfg)
	if err != nil {
		// history is optional; the batch still runs
		logger.Warn("ledger unavailable, run will not be recorded", "error", err)
		db = nil
	}
	defer db.Close()

	rep, err := newRunner(cfg, db).Run(ctx)
	if err != nil {
		return err
	}
	return rep.Render(cmd.OutOrStdout())
}
