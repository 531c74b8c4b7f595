// =============================================================================
// datatool - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   datatool validate <path> --schema <schema_path> [--report-dir <dir>]
//
// Reads the entire file, loads the schema (a JSON object or YAML mapping of
// field name to type tag), and checks every record against every schema
// field. Findings are collected, never aborted on; a non-empty list exits
// with status 3 after printing up to the configured number of lines.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datatool-dev/datatool/internal/reader"
	"github.com/datatool-dev/datatool/internal/schema"
	"github.com/datatool-dev/datatool/pkg/utils"
)

// schemaPath is the schema document for validate.
var schemaPath string

// reportDir overrides the configured report directory.
var reportDir string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <path> --schema <schema_path>",
	Short: "Validate a CSV, JSON, or XLSX file against a field -> type schema",
	Long: `The validate command checks required-field presence and type
coercibility for every record against a flat schema.

Schema type tags are "str", "int", and "float" (with "string"/"text",
"integer", and "real"/"double" accepted as aliases). A field that is absent
or present with empty text is reported as missing. All records and all
fields are always checked; the command never stops at the first finding.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&schemaPath,
		"schema",
		"",
		"Path to the schema document (JSON object or YAML mapping)",
	)
	validateCmd.MarkFlagRequired("schema")

	validateCmd.Flags().StringVar(
		&reportDir,
		"report-dir",
		"",
		"Directory to write a full validation report into",
	)
}

// runValidate reads, validates, and reports.
func runValidate(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !utils.FileExists(path) {
		return missingInputError(path)
	}

	ds, err := reader.Read(path, reader.FormatAuto, 0)
	if err != nil {
		return err
	}
	logVerbose("Read %d record(s) from %s", len(ds), path)

	s, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}
	logVerbose("Loaded schema with %d field(s) from %s", s.Len(), schemaPath)

	findings := schema.Validate(ds, s)
	if len(findings) == 0 {
		fmt.Println("Validation passed ✓")
		return nil
	}

	fmt.Println("Validation found errors:")
	shown := len(findings)
	if shown > cfg.MaxErrorsShown {
		shown = cfg.MaxErrorsShown
	}
	for _, f := range findings[:shown] {
		fmt.Printf(" - %s\n", f)
	}
	if shown < len(findings) {
		fmt.Printf(" ... and %d more\n", len(findings)-shown)
	}

	dir := reportDir
	if dir == "" {
		dir = cfg.ReportDir
	}
	if dir != "" {
		reportPath, err := utils.WriteValidationReport(dir, path, findings)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}

	return &exitError{
		code:  3,
		quiet: true,
		err:   fmt.Errorf("validation failed with %d finding(s)", len(findings)),
	}
}
