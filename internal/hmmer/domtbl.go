// Package hmmer parses HMMER per-domain table output (domtblout) and
// selects best hits per grouping key.
package hmmer

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mvillar/annokit/internal/model"
)

// domtblout data lines carry at least 22 whitespace-delimited columns;
// anything beyond column 22 is free-text description.
const minColumns = 22

// ParseTable decodes domtblout lines from r. Comment lines ('#'), short
// lines, and lines with unparseable numeric fields are skipped silently;
// a malformed row never aborts the parse.
func ParseTable(r io.Reader) ([]model.DomainHit, error) {
	var hits []model.DomainHit

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < minColumns {
			continue
		}
		hit, ok := decodeHit(parts)
		if !ok {
			continue
		}
		hits = append(hits, hit)
	}
	return hits, sc.Err()
}

// ParseFile reads a domtblout file. A missing or empty file yields no
// hits: absent annotation sources are expected, not errors.
func ParseFile(path string) ([]model.DomainHit, error) {
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		return nil, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil
	}
	defer fh.Close()
	return ParseTable(fh)
}

func decodeHit(parts []string) (model.DomainHit, bool) {
	var (
		hit model.DomainHit
		ok  = true
	)
	f := func(i int) float64 {
		// HMMER may print exponents with an uppercase E
		v, err := strconv.ParseFloat(strings.ReplaceAll(parts[i], "E", "e"), 64)
		if err != nil {
			ok = false
		}
		return v
	}
	n := func(i int) int {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			ok = false
		}
		return v
	}

	hit.TargetName = parts[0]
	hit.TargetAcc = parts[1]
	hit.QueryName = parts[3]
	hit.QueryAcc = parts[4]
	hit.FullEvalue = f(6)
	hit.FullScore = f(7)
	hit.FullBias = f(8)
	hit.DomIEvalue = f(12)
	hit.DomScore = f(13)
	hit.DomBias = f(14)
	hit.HmmFrom = n(15)
	hit.HmmTo = n(16)
	hit.AliFrom = n(17)
	hit.AliTo = n(18)
	hit.EnvFrom = n(19)
	hit.EnvTo = n(20)
	hit.Acc = f(21)
	if len(parts) > minColumns {
		hit.Desc = strings.Join(parts[minColumns:], " ")
	}
	return hit, ok
}
