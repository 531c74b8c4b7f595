// =============================================================================
// datatool - Convert-to-JSON Command
// =============================================================================
//
// COMMAND USAGE:
//   datatool convert-to-json <path> -o <output>
//
// Reads an entire delimited file (or XLSX workbook) and writes the record
// sequence as an indented, unicode-preserving JSON array. Every cell stays
// a string; no type inference happens on the way through.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datatool-dev/datatool/internal/reader"
	"github.com/datatool-dev/datatool/internal/record"
	"github.com/datatool-dev/datatool/pkg/utils"
)

// toJSONOutput is the output path for convert-to-json.
var toJSONOutput string

// convertToJSONCmd represents the 'convert-to-json' command.
var convertToJSONCmd = &cobra.Command{
	Use:   "convert-to-json <csv_path> -o <output>",
	Short: "Convert a CSV or XLSX file to a JSON array of records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvertToJSON(args[0], toJSONOutput)
	},
}

func init() {
	rootCmd.AddCommand(convertToJSONCmd)

	convertToJSONCmd.Flags().StringVarP(
		&toJSONOutput,
		"output",
		"o",
		"",
		"Path of the JSON file to write",
	)
	convertToJSONCmd.MarkFlagRequired("output")
}

// runConvertToJSON converts one tabular file to a JSON document.
func runConvertToJSON(inPath, outPath string) error {
	if !utils.FileExists(inPath) {
		return missingInputError(inPath)
	}

	format := reader.FormatCSV
	if reader.DetectFormat(inPath) == reader.FormatXLSX {
		format = reader.FormatXLSX
	}

	ds, err := reader.Read(inPath, format, 0)
	if err != nil {
		return err
	}
	logVerbose("Read %d record(s) from %s", len(ds), inPath)

	data := record.EncodeIndent(record.List(ds...), "  ")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %d records to %s\n", len(ds), outPath)
	return nil
}
