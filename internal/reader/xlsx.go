// =============================================================================
// datatool - Spreadsheet Reader
// =============================================================================
//
// XLSX input support. Only the first sheet is read; the first non-empty row
// is the header and every later non-empty row becomes one record, with the
// same short-row and cap semantics as the delimited reader. Cell values
// arrive as the display text excelize produces.
//
// =============================================================================

package reader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/datatool-dev/datatool/internal/record"
)

// readXLSX reads up to maxRows records from the first sheet of a workbook.
func readXLSX(path string, maxRows int) (record.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &record.ParseError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &record.FormatError{Msg: fmt.Sprintf("%s: workbook has no sheets", path)}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &record.ParseError{Path: path, Err: err}
	}

	var header []string
	ds := record.Dataset{}
	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		ds = append(ds, rowToRecord(header, row))
		if maxRows > 0 && len(ds) >= maxRows {
			break
		}
	}

	return ds, nil
}

// isRowEmpty checks if a row contains only blank cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
