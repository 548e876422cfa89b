// Package signalp parses SignalP summary tables.
package signalp

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mvillar/annokit/internal/model"
)

// ParseSummary decodes a tab-separated SignalP summary. The first line is
// a header and is discarded unconditionally. Data rows need at least six
// tab fields with integer fields 2-6; rows that fall short are dropped
// silently. The map key is the first whitespace token of field 1, matching
// the FASTA reader's identifier extraction. A duplicate key overwrites the
// earlier record (last wins).
func ParseSummary(r io.Reader) (map[string]model.SignalPeptideRecord, error) {
	records := make(map[string]model.SignalPeptideRecord)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 6 {
			continue
		}

		fields := strings.Fields(parts[0])
		if len(fields) == 0 {
			continue
		}
		id := fields[0]

		nums := make([]int, 5)
		ok := true
		for i := 0; i < 5; i++ {
			v, err := strconv.Atoi(strings.TrimSpace(parts[i+1]))
			if err != nil {
				ok = false
				break
			}
			nums[i] = v
		}
		if !ok {
			continue
		}

		records[id] = model.SignalPeptideRecord{
			SpStart:         nums[0],
			SpEnd:           nums[1],
			CleavageAfterAA: nums[2],
			OriginalLen:     nums[3],
			MatureLen:       nums[4],
		}
	}
	return records, sc.Err()
}

// ParseFile reads a SignalP summary file. Missing or empty files yield an
// empty map.
func ParseFile(path string) (map[string]model.SignalPeptideRecord, error) {
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		return map[string]model.SignalPeptideRecord{}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return map[string]model.SignalPeptideRecord{}, nil
	}
	defer fh.Close()
	return ParseSummary(fh)
}
