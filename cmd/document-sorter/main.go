package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/document-sorter/internal/common"
	"github.com/joseph-ayodele/document-sorter/internal/version"
)

// Populated by the root command's PersistentPreRunE.
var (
	cfg    *common.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "document-sorter",
	Short: "Rename and file PDF business documents by their contents",
	Long: `document-sorter reads every PDF in SOURCE_DIR, asks a language model for the
document type, issuer, issue date and amount, and copies each file to
OUTPUT_DIR/<type>/<date>_<issuer>_<price>_<type>.pdf. A manifest of every
copy is written to OUTPUT_DIR/一覧.csv.

Settings come from the environment (or a .env file) and an optional
document-sorter.yaml in the working directory.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runBatch,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("document-sorter %s\n", version.String()))
	rootCmd.AddCommand(textCmd, classifyCmd, historyCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	c, err := common.LoadConfig()
	if err != nil {
		return err
	}
	cfg = c
	logger = common.NewLogger(cfg.Log, cmd.ErrOrStderr())
	slog.SetDefault(logger)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
