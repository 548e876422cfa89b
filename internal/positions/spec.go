// Package positions parses position-range specifications and resolves
// which ranges apply to each FASTA record.
package positions

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a 1-based inclusive coordinate pair, or the no-cut sentinel
// meaning "return the sequence unchanged".
type Range struct {
	Start int
	End   int
	NoCut bool
}

// RangeList is an ordered list of ranges for one record.
type RangeList []Range

// HasNoCut reports whether any range in the list is the no-cut sentinel.
func (rl RangeList) HasNoCut() bool {
	for _, r := range rl {
		if r.NoCut {
			return true
		}
	}
	return false
}

// ParseSpec decodes a spec string like "32-33", "10-20,40-50" or "-" into
// a RangeList. A bare "-" piece is the no-cut sentinel; blank pieces are
// skipped. A malformed A-B piece is a fatal input error.
func ParseSpec(s string) (RangeList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var ranges RangeList
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if piece == "-" {
			ranges = append(ranges, Range{NoCut: true})
			continue
		}
		r, err := parseRange(piece)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseRange(piece string) (Range, error) {
	a, b, found := strings.Cut(piece, "-")
	if !found {
		return Range{}, fmt.Errorf("bad range format %q (expected A-B)", piece)
	}
	start, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return Range{}, fmt.Errorf("bad range format %q (expected A-B)", piece)
	}
	end, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return Range{}, fmt.Errorf("bad range format %q (expected A-B)", piece)
	}
	return Range{Start: start, End: end}, nil
}
