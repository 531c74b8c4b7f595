// =============================================================================
// datatool - Summary Printer
// =============================================================================
//
// Pure presentation over an already-read dataset: the column list comes from
// the first record, then up to a handful of sample records are printed with
// long values trimmed. Output goes through an io.Writer so tests can capture
// it exactly.
//
// =============================================================================

package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/datatool-dev/datatool/internal/record"
)

// maxValueWidth is the longest value printed before trimming.
const maxValueWidth = 80

// Print writes a quick summary of the dataset: the column list of the first
// record, the sample size, and up to show sample records. An empty dataset
// prints a single notice line.
func Print(w io.Writer, ds record.Dataset, show int) error {
	if len(ds) == 0 {
		fmt.Fprintln(w, "No rows to summarize.")
		return nil
	}

	first := ds[0]
	if !first.IsObject() {
		return &record.ShapeError{Index: 0, Kind: first.Kind()}
	}

	columns := make([]string, 0, first.Len())
	for _, f := range first.Fields() {
		columns = append(columns, f.Name)
	}

	fmt.Fprintf(w, "Columns (%d): [%s]\n", len(columns), strings.Join(columns, ", "))
	fmt.Fprintf(w, "Total sample rows: %d (showing up to %d)\n\n", len(ds), show)

	for i, rec := range ds {
		if i >= show {
			break
		}
		fmt.Fprintf(w, "Row %d:\n", i+1)
		for _, c := range columns {
			fmt.Fprintf(w, "  %s: %s\n", c, trimValue(rec.Get(c)))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// trimValue renders a value for display, trimming anything longer than
// maxValueWidth characters.
func trimValue(v *record.Value) string {
	s := v.Text()
	runes := []rune(s)
	if len(runes) > maxValueWidth {
		return string(runes[:maxValueWidth-3]) + "..."
	}
	return s
}
