// Package extract cuts sequences out of FASTA streams, either by
// position ranges or by name lists.
package extract

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mvillar/annokit/internal/fasta"
	"github.com/mvillar/annokit/internal/positions"
)

// Apply returns the subsequence selected by ranges from seq. An empty
// range list yields "". Any no-cut sentinel returns seq unchanged. In
// tail mode each A-B window becomes [max(1,B), len]; otherwise
// [max(1,A), min(len,B)]. Coordinates are 1-based inclusive; an inverted
// window after clamping contributes nothing. Surviving windows are
// concatenated in list order without deduplication.
func Apply(seq string, ranges positions.RangeList, tail bool) string {
	if len(ranges) == 0 {
		return ""
	}
	if ranges.HasNoCut() {
		return seq
	}
	n := len(seq)
	var out strings.Builder
	for _, r := range ranges {
		var start, end int
		if tail {
			start, end = max(1, r.End), n
		} else {
			start, end = max(1, r.Start), min(n, r.End)
		}
		if start > end {
			continue
		}
		out.WriteString(seq[start-1 : end])
	}
	return out.String()
}

// PositionsOptions configures a positions extraction run.
type PositionsOptions struct {
	Spec *positions.Spec
	Tail bool
	Wrap int
}

// Stats summarizes an extraction run.
type Stats struct {
	Read    int
	Written int
	Skipped int
}

// ByPositions streams FASTA records from r, resolves each record's
// ranges per the classified spec, and writes the extracted records to w.
// Records with no resolvable ranges or an empty extraction result are
// skipped. Headers are emitted verbatim.
func ByPositions(w io.Writer, r io.Reader, opt PositionsOptions, logger *log.Logger) (Stats, error) {
	var stats Stats
	ordinal := 0
	err := fasta.Scan(r, func(rec fasta.Record) error {
		ordinal++
		stats.Read++

		ranges := opt.Spec.Resolve(rec.ID, ordinal)
		if len(ranges) == 0 {
			stats.Skipped++
			logger.Debug("skipping record, no ranges specified", "id", rec.ID)
			return nil
		}
		sub := Apply(rec.Seq, ranges, opt.Tail)
		if sub == "" {
			stats.Skipped++
			logger.Debug("skipping record, empty subsequence", "id", rec.ID)
			return nil
		}
		if err := fasta.WriteRecord(w, rec.Header(), sub, opt.Wrap); err != nil {
			return err
		}
		stats.Written++
		return nil
	})
	return stats, err
}
