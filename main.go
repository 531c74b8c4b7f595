// =============================================================================
// datatool - Main Entry Point
// =============================================================================
//
// datatool is a small CLI for ad-hoc inspection of record data. It reads
// CSV, JSON, and XLSX files, prints quick summaries, converts between the
// CSV and JSON encodings, and validates records against a flat field->type
// schema.
//
// USAGE:
//   datatool summary <path>                      - Print a quick summary
//   datatool convert-to-json <path> -o <output>  - Convert CSV/XLSX -> JSON
//   datatool convert-to-csv <path> -o <output>   - Convert JSON -> CSV
//   datatool validate <path> --schema <schema>   - Validate against a schema
//   datatool version                             - Display the version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core logic (record model, readers, flattener, validator)
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/datatool-dev/datatool/cmd"
)

func main() {
	cmd.Execute()
}
