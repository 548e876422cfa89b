package summary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mvillar/annokit/internal/model"
)

func TestWriteCSV_HeaderAndBlankCells(t *testing.T) {
	rows := []model.SummaryRow{{
		Sample:           "sampleA",
		SequenceID:       "X",
		LengthSelected:   "100",
		HasSignalPeptide: "no",
		PfamAccession:    "PF01083",
	}}

	var sb strings.Builder
	if err := WriteCSV(&sb, rows); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(model.SummaryHeader, ",") {
		t.Errorf("header wrong:\n%s", lines[0])
	}

	cells := strings.Split(lines[1], ",")
	if len(cells) != len(model.SummaryHeader) {
		t.Fatalf("expected %d cells, got %d", len(model.SummaryHeader), len(cells))
	}
	if cells[0] != "sampleA" || cells[1] != "X" {
		t.Errorf("key cells wrong: %v", cells[:2])
	}
	// Missing sources serialize as blank cells, not as a null token.
	if cells[2] != "" || cells[5] != "" {
		t.Errorf("expected blank cells for missing sources: %v", cells)
	}
}

func TestWriteCSVFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "summary.csv")
	if err := WriteCSVFile(path, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "sample,sequence_id,") {
		t.Errorf("unexpected file contents: %q", string(data))
	}
}
