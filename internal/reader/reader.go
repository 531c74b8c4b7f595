// =============================================================================
// datatool - Record Reader
// =============================================================================
//
// This package loads datasets from the supported on-disk formats:
//   - Delimited rows (CSV): first row is the header, every later row is one
//     record keyed by the header.
//   - Hierarchical documents (JSON): a single record or an array of records.
//   - Spreadsheets (XLSX): first sheet, first row is the header.
//
// All readers honor an optional cap on the number of records materialized.
// A cap of zero or less means unlimited. Capping preserves original record
// order and never alters the fields of a kept record.
//
// When a file's extension identifies none of the formats, DetectAndRead
// performs an ordered try/fallback: the hierarchical parse is attempted
// first, and on any failure the delimited parse is attempted; if both fail
// the delimited attempt's error is the one reported.
//
// =============================================================================

package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datatool-dev/datatool/internal/record"
)

// Format selects a reader.
type Format string

const (
	// FormatAuto dispatches on the file extension, falling back to
	// DetectAndRead for unrecognized extensions.
	FormatAuto Format = "auto"

	// FormatCSV reads delimited rows with a leading header row.
	FormatCSV Format = "csv"

	// FormatJSON reads a hierarchical document.
	FormatJSON Format = "json"

	// FormatXLSX reads the first sheet of a spreadsheet.
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file extension to a Format. Unrecognized extensions
// map to FormatAuto.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatAuto
	}
}

// Read loads a dataset from path in the given format, materializing at most
// maxRows records when maxRows is positive.
func Read(path string, format Format, maxRows int) (record.Dataset, error) {
	switch format {
	case FormatCSV:
		return readCSV(path, maxRows)
	case FormatJSON:
		return readJSON(path, maxRows)
	case FormatXLSX:
		return readXLSX(path, maxRows)
	case FormatAuto:
		if f := DetectFormat(path); f != FormatAuto {
			return Read(path, f, maxRows)
		}
		return DetectAndRead(path, maxRows)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// DetectAndRead reads a file whose extension identifies no format. The
// hierarchical parse is tried first; on any failure the delimited parse is
// tried, and its error is what the caller sees if both fail.
func DetectAndRead(path string, maxRows int) (record.Dataset, error) {
	if ds, err := readJSON(path, maxRows); err == nil {
		return ds, nil
	}
	return readCSV(path, maxRows)
}
