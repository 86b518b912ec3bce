package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text <file.pdf>",
	Short: "Print the reconstructed text of one PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newTextExtractor(cfg).Extract(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("text extraction failed: %w", err)
		}
		logger.Info("text extraction OK",
			"pages", res.Pages,
			"lines", res.Lines,
			"duration_ms", res.Duration.Milliseconds(),
		)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return err
	},
}
