// =============================================================================
// datatool - Delimited-Row Reader
// =============================================================================
//
// CSV reading with DictReader-style semantics: the header row defines the
// field names for every data row. A row shorter than the header leaves the
// trailing fields absent from the record (not empty, absent); cells beyond
// the header are ignored. Rows are read one at a time so a cap stops work
// early instead of materializing the whole file first.
//
// =============================================================================

package reader

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/datatool-dev/datatool/internal/record"
)

// readCSV reads up to maxRows data rows from a delimited file. The header row is
// not counted against the row cap. An empty file yields an empty dataset.
func readCSV(path string, maxRows int) (record.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(bufio.NewReader(file))
	configureReader(r)

	header, err := r.Read()
	if err == io.EOF {
		return record.Dataset{}, nil
	}
	if err != nil {
		return nil, &record.ParseError{Path: path, Err: err}
	}

	var ds record.Dataset
	for maxRows <= 0 || len(ds) < maxRows {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &record.ParseError{Path: path, Err: err}
		}
		ds = append(ds, rowToRecord(header, row))
	}

	if ds == nil {
		ds = record.Dataset{}
	}
	return ds, nil
}

// configureReader applies the parsing options shared by every delimited
// read: variable field counts per row, tolerant quote handling, and
// leading-space trimming.
func configureReader(r *csv.Reader) {
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
}

// rowToRecord builds one record from a data row using the header as keys.
// Missing trailing cells stay absent; extra trailing cells are dropped.
func rowToRecord(header []string, row []string) *record.Value {
	rec := record.Object()
	for i, name := range header {
		if i >= len(row) {
			break
		}
		rec.Set(name, record.Str(row[i]))
	}
	return rec
}
