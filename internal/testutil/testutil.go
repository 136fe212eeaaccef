// Package testutil provides shared helpers for writing board-export fixtures.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// WriteExport writes rows (header first) as a CSV file in a temp directory
// and returns its path.
func WriteExport(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
