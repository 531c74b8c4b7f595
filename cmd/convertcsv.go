// =============================================================================
// datatool - Convert-to-CSV Command
// =============================================================================
//
// COMMAND USAGE:
//   datatool convert-to-csv <path> -o <output>
//
// Reads a hierarchical JSON document (one record or an array of records),
// flattens it, and writes delimited rows with the header first. The header
// is the sorted union of every field name; nested values are re-encoded as
// compact JSON text inside their cell.
//
// =============================================================================

package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datatool-dev/datatool/internal/flatten"
	"github.com/datatool-dev/datatool/internal/reader"
	"github.com/datatool-dev/datatool/pkg/utils"
)

// toCSVOutput is the output path for convert-to-csv.
var toCSVOutput string

// convertToCSVCmd represents the 'convert-to-csv' command.
var convertToCSVCmd = &cobra.Command{
	Use:   "convert-to-csv <json_path> -o <output>",
	Short: "Convert a JSON document to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvertToCSV(args[0], toCSVOutput)
	},
}

func init() {
	rootCmd.AddCommand(convertToCSVCmd)

	convertToCSVCmd.Flags().StringVarP(
		&toCSVOutput,
		"output",
		"o",
		"",
		"Path of the CSV file to write",
	)
	convertToCSVCmd.MarkFlagRequired("output")
}

// runConvertToCSV converts one hierarchical document to delimited rows.
func runConvertToCSV(inPath, outPath string) error {
	if !utils.FileExists(inPath) {
		return missingInputError(inPath)
	}

	ds, err := reader.Read(inPath, reader.FormatJSON, 0)
	if err != nil {
		return err
	}
	logVerbose("Read %d record(s) from %s", len(ds), inPath)

	header, rows, err := flatten.Flatten(ds)
	if err != nil {
		return err
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %d records to %s\n", len(rows), outPath)
	return nil
}
