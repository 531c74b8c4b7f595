package flatten

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/datatool-dev/datatool/internal/record"
)

func TestFlatten_SortedUnionHeader(t *testing.T) {
	ds := record.Dataset{
		record.Object(
			record.Field{Name: "zebra", Value: record.Str("1")},
			record.Field{Name: "apple", Value: record.Str("2")},
		),
		record.Object(
			record.Field{Name: "mango", Value: record.Str("3")},
		),
	}

	header, rows, err := Flatten(ds)
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	if !reflect.DeepEqual(header, []string{"apple", "mango", "zebra"}) {
		t.Errorf("expected sorted union header, got %v", header)
	}
	if !reflect.DeepEqual(rows[0], []string{"2", "", "1"}) {
		t.Errorf("row 0: got %v", rows[0])
	}
	if !reflect.DeepEqual(rows[1], []string{"", "3", ""}) {
		t.Errorf("row 1: got %v", rows[1])
	}
}

func TestFlatten_NestedValueBecomesJSONCell(t *testing.T) {
	ds := record.Dataset{
		record.Object(
			record.Field{Name: "x", Value: record.Int(1)},
			record.Field{Name: "y", Value: record.Object(
				record.Field{Name: "z", Value: record.Int(2)},
			)},
		),
	}

	header, rows, err := Flatten(ds)
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	if !reflect.DeepEqual(header, []string{"x", "y"}) {
		t.Errorf("expected header [x y], got %v", header)
	}
	if rows[0][0] != "1" {
		t.Errorf("expected x cell 1, got %q", rows[0][0])
	}
	if rows[0][1] != `{"z": 2}` {
		t.Errorf("expected y cell re-serialized, got %q", rows[0][1])
	}
}

func TestFlatten_ScalarConversions(t *testing.T) {
	ds := record.Dataset{
		record.Object(
			record.Field{Name: "b", Value: record.Bool(true)},
			record.Field{Name: "f", Value: record.Float(2.5)},
			record.Field{Name: "i", Value: record.Int(-3)},
			record.Field{Name: "n", Value: record.Null()},
			record.Field{Name: "s", Value: record.Str("txt")},
			record.Field{Name: "l", Value: record.List(record.Int(1), record.Int(2))},
		),
	}

	_, rows, err := Flatten(ds)
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	// Header sorts to [b f i l n s].
	want := []string{"true", "2.5", "-3", "[1, 2]", "", "txt"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("expected %v, got %v", want, rows[0])
	}
}

func TestFlatten_NonRecordElementIsShapeError(t *testing.T) {
	ds := record.Dataset{
		record.Object(record.Field{Name: "a", Value: record.Int(1)}),
		record.Str("not a record"),
	}

	_, _, err := Flatten(ds)
	var se *record.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	if se.Index != 1 {
		t.Errorf("expected offending index 1, got %d", se.Index)
	}
}

func TestFlatten_EmptyDataset(t *testing.T) {
	header, rows, err := Flatten(record.Dataset{})
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	if len(header) != 0 || len(rows) != 0 {
		t.Errorf("expected empty output, got header %v rows %v", header, rows)
	}
}

// Flattening the hierarchical re-encoding of a flat dataset reproduces the
// original cells for every originally-present field.
func TestFlatten_RoundTripThroughJSON(t *testing.T) {
	ds := record.Dataset{
		record.Object(
			record.Field{Name: "name", Value: record.Str("Ada")},
			record.Field{Name: "age", Value: record.Str("36")},
		),
		record.Object(
			record.Field{Name: "name", Value: record.Str("Lin")},
			record.Field{Name: "age", Value: record.Str("29")},
		),
	}

	wantHeader, wantRows, err := Flatten(ds)
	if err != nil {
		t.Fatalf("flatten original: %v", err)
	}

	encoded := record.EncodeIndent(record.List(ds...), "  ")
	decoded, err := record.DecodeJSON(strings.NewReader(string(encoded)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	gotHeader, gotRows, err := Flatten(record.Dataset(decoded.Items()))
	if err != nil {
		t.Fatalf("flatten decoded: %v", err)
	}

	if !reflect.DeepEqual(gotHeader, wantHeader) {
		t.Errorf("header changed: %v vs %v", gotHeader, wantHeader)
	}
	if !reflect.DeepEqual(gotRows, wantRows) {
		t.Errorf("rows changed: %v vs %v", gotRows, wantRows)
	}
}
