package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/document-sorter/internal/repository"
)

var historyCmd = &cobra.Command{
	Use:   "history <run-id>",
	Short: "List the documents of a recorded run (requires LEDGER_DSN)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openLedger(ctx, cfg)
		if err != nil {
			return err
		}
		if db == nil {
			return errors.New("LEDGER_DSN is not set")
		}
		defer db.Close()

		runs := repository.NewRunRepository(db, logger)
		run, err := runs.GetRun(ctx, args[0])
		if err != nil {
			return err
		}
		docs, err := runs.Documents(ctx, run.ID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "run %s  %s -> %s  processed=%d skipped=%d defaulted=%d\n",
			run.ID, run.SourceDir, run.OutputDir, run.Processed, run.Skipped, run.Defaulted)
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tSTATUS\tSOURCE\tDESTINATION / REASON")
		for _, d := range docs {
			dest := d.NewPath
			if dest == "" {
				dest = d.Reason + " " + d.Error
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.Position, d.Status, d.SourcePath, dest)
		}
		return w.Flush()
	},
}
