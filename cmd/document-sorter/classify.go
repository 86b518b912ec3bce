package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/document-sorter/internal/llm"
)

type classifyOutput struct {
	Path    string         `json:"path"`
	Origin  llm.Origin     `json:"origin"`
	Fields  llm.Attributes `json:"attributes"`
	NewPath string         `json:"new_path"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <file.pdf>",
	Short: "Show the attributes and destination of one PDF without copying it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c, reason, err := newProcessor(cfg).Classify(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", reason, err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(classifyOutput{
			Path:    args[0],
			Origin:  c.Extraction.Origin,
			Fields:  c.Extraction.Attributes,
			NewPath: c.NewPath,
		})
	},
}
