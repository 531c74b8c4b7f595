package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !FileExists(path) {
		t.Error("expected existing file to be reported")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("expected missing file to be reported absent")
	}
	if FileExists(dir) {
		t.Error("a directory is not a file")
	}
}

func TestWriteValidationReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	findings := []string{
		"row 1: missing a",
		`row 2: field b expected int, got "x"`,
	}

	path, err := WriteValidationReport(dir, "data.csv", findings)
	if err != nil {
		t.Fatalf("write report: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "validation_") || !strings.HasSuffix(name, ".log") {
		t.Errorf("unexpected report name %q", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "Source:    data.csv") {
		t.Error("report should name its source")
	}
	if !strings.Contains(content, "Findings:  2") {
		t.Error("report should count its findings")
	}
	for _, f := range findings {
		if !strings.Contains(content, f) {
			t.Errorf("report missing finding %q", f)
		}
	}
}

func TestWriteValidationReport_UniqueNames(t *testing.T) {
	dir := t.TempDir()

	p1, err := WriteValidationReport(dir, "a.csv", []string{"x"})
	if err != nil {
		t.Fatalf("first report: %v", err)
	}
	p2, err := WriteValidationReport(dir, "a.csv", []string{"x"})
	if err != nil {
		t.Fatalf("second report: %v", err)
	}
	if p1 == p2 {
		t.Error("two reports in the same second should not collide")
	}
}
