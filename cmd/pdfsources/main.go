// Package main provides the pdfsources CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matsen/pdfsources/internal/config"
	"github.com/matsen/pdfsources/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	humanOutput bool
	debugOutput bool

	logger *zap.Logger
	cfg    *config.Config
)

func main() {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pdfsources [json files...]",
	Short: "Extract and process citations from PDF files using anystyle",
	Long: `pdfsources builds Markdown bibliographies from the citations in academic PDFs.

Citations are extracted with anystyle, cleaned, filtered for extraction noise,
deduplicated, and written in Chicago, APA or Harvard style as one or more of
four groupings: divided (by type), combined, sources, and sources divided.

Examples:
  pdfsources                             # Process PDFs in 'pdfs/', generate all formats
  pdfsources --divided-output            # Generate only the divided bibliography
  pdfsources --style apa --overwrite     # All formats in APA style, overwrite existing
  pdfsources info/*.json                 # Process existing anystyle JSON files
  pdfsources check info/*.json           # Show why each citation is kept or dropped`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&debugOutput, "debug", "d", false, "Enable debug logging")
	rootCmd.Version = Version
}

// setup loads .env, builds the logger and reads configuration.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger = logging.New(debugOutput)
	cfg = config.LoadOrDefault(config.Path(), logger)
	cfg.ApplyEnv()
	return nil
}
