package summary

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/mvillar/annokit/internal/model"
)

// WriteCSV writes the summary table with its fixed header. Missing
// source fields serialize as blank cells.
func WriteCSV(w io.Writer, rows []model.SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.SummaryHeader); err != nil {
		return err
	}
	for i := range rows {
		if err := cw.Write(rows[i].Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the summary table to path, creating parent
// directories as needed.
func WriteCSVFile(path string, rows []model.SummaryRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(fh, rows); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
