// =============================================================================
// datatool - Summary Command
// =============================================================================
//
// COMMAND USAGE:
//   datatool summary <path>
//
// Reads up to a configured number of records (default 20) and prints the
// column list plus a handful of sample records. Format is chosen by the
// file extension, with try/fallback detection for anything unrecognized.
//
// =============================================================================

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/datatool-dev/datatool/internal/reader"
	"github.com/datatool-dev/datatool/internal/summary"
	"github.com/datatool-dev/datatool/pkg/utils"
)

// summaryCmd represents the 'summary' command.
var summaryCmd = &cobra.Command{
	Use:   "summary <path>",
	Short: "Print a quick summary of a CSV, JSON, or XLSX file",
	Long: `The summary command reads a sample of records from the given file and
prints the column list followed by up to a few sample records. Long values
are trimmed for display.

The sample size and the number of printed records come from the
configuration file (summary_rows and summary_show).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(args[0])
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// runSummary reads the sample and prints it.
func runSummary(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !utils.FileExists(path) {
		return missingInputError(path)
	}

	ds, err := reader.Read(path, reader.FormatAuto, cfg.SummaryRows)
	if err != nil {
		return err
	}
	logVerbose("Read %d record(s) from %s", len(ds), path)

	return summary.Print(os.Stdout, ds, cfg.SummaryShow)
}
