// =============================================================================
// datatool - Root Command
// =============================================================================
//
// The root command carries the global flags and the exit-code plumbing. The
// tool uses four exit statuses:
//   0 - success (including a passing validation)
//   1 - any core failure (parse, format, shape, schema, I/O)
//   2 - the primary input path does not exist
//   3 - validation ran and found errors (a normal result, not a failure)
//
// Commands signal 2 and 3 by returning an exitError; everything else exits 1.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datatool-dev/datatool/internal/config"
	"github.com/datatool-dev/datatool/pkg/utils"
)

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables extra progress output.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "datatool",
	Short: "datatool - Read, summarize, convert, and validate CSV/JSON data",
	Long: `datatool is a small CLI for ad-hoc inspection of record data.

It reads tabular data as delimited rows (CSV), hierarchical documents
(JSON), or spreadsheets (XLSX), prints quick summaries, converts between
the CSV and JSON encodings, and validates records against a flat
field -> type schema. Files with an unrecognized extension are read by
trying the JSON parser first and falling back to CSV.

Example Usage:
  datatool summary data.csv
  datatool convert-to-json data.csv -o data.json
  datatool convert-to-csv data.json -o data.csv
  datatool validate data.csv --schema schema.json`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// exitError carries an explicit exit status out of a command. When quiet is
// set the command already printed its result and Execute only sets the
// status.
type exitError struct {
	code  int
	err   error
	quiet bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// missingInputError builds the exit-status-2 error for an absent input path.
func missingInputError(path string) error {
	return &exitError{code: 2, err: fmt.Errorf("file not found: %s", path)}
}

// Execute runs the root command and converts the returned error into the
// process exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
			if ee.quiet {
				os.Exit(code)
			}
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(code)
	}
}

// loadConfig loads the configuration file. The default path is optional; a
// path given explicitly must exist and parse.
func loadConfig() (*config.Config, error) {
	if cfgFile != config.DefaultPath {
		return config.Load(cfgFile)
	}
	if utils.FileExists(cfgFile) {
		return config.Load(cfgFile)
	}
	return config.Default(), nil
}

// logVerbose prints progress output when --verbose is set.
func logVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)
}
