// =============================================================================
// datatool - File Utilities
// =============================================================================
//
// Shared file helpers plus the validation report writer. Report files get a
// timestamped, uuid-suffixed name so repeated runs against the same input
// never clobber each other.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteValidationReport writes every validation finding for source to a new
// report file under dir and returns the file's path.
//
// The report has a small header (source file, timestamp, finding count)
// followed by one finding per line.
func WriteValidationReport(dir, source string, findings []string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	now := time.Now()
	name := fmt.Sprintf("validation_%s_%s.log",
		now.Format("20060102_150405"),
		uuid.New().String()[:8],
	)
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "Validation report\n")
	fmt.Fprintf(w, "Source:    %s\n", source)
	fmt.Fprintf(w, "Generated: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(w, "Findings:  %d\n\n", len(findings))
	for _, f := range findings {
		fmt.Fprintf(w, "%s\n", f)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}
