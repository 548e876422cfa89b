package fasta

import (
	"fmt"
	"io"
)

// WriteRecord writes one FASTA record. The header is emitted verbatim
// after '>'. wrap > 0 folds the sequence at that column; wrap <= 0 emits
// the sequence on a single line.
func WriteRecord(w io.Writer, header, seq string, wrap int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
		return err
	}
	if wrap <= 0 {
		_, err := fmt.Fprintln(w, seq)
		return err
	}
	for i := 0; i < len(seq); i += wrap {
		end := i + wrap
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := fmt.Fprintln(w, seq[i:end]); err != nil {
			return err
		}
	}
	return nil
}
