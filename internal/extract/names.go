package extract

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mvillar/annokit/internal/fasta"
)

// NamesOptions configures a name-list extraction run.
type NamesOptions struct {
	Targets    []string // resolved target names, duplicates removed
	Substring  bool     // match anywhere in the full header
	IgnoreCase bool
	FastaOrder bool // emit matches in FASTA order instead of list order
	Wrap       int
}

// ReadNameList reads one name per line from path, skipping blank lines
// and '#' comments.
func ReadNameList(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var names []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}

// SplitNames splits a comma- or whitespace-separated names argument.
func SplitNames(arg string) []string {
	var names []string
	for _, chunk := range strings.Split(arg, ",") {
		names = append(names, strings.Fields(chunk)...)
	}
	return names
}

// DedupeNames removes duplicate names while preserving first-seen order.
func DedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ByNames writes the FASTA records matching opt.Targets to w. Default
// matching is exact against the first header token; Substring matches
// anywhere in the full header. Output follows target list order unless
// FastaOrder is set. Unmatched targets are logged, never fatal.
func ByNames(w io.Writer, r io.Reader, opt NamesOptions, logger *log.Logger) (Stats, error) {
	keys := make([]string, len(opt.Targets))
	for i, t := range opt.Targets {
		keys[i] = opt.fold(t)
	}

	if opt.FastaOrder {
		return opt.streamFastaOrder(w, r, keys)
	}

	// List order: index the FASTA up front, first record wins per key.
	type entry struct {
		header string
		seq    string
	}
	index := make(map[string]entry)
	var order []string
	err := fasta.Scan(r, func(rec fasta.Record) error {
		key := opt.fold(rec.ID)
		if opt.Substring {
			key = opt.fold(rec.Header())
		}
		if _, dup := index[key]; !dup {
			index[key] = entry{header: rec.Header(), seq: rec.Seq}
			order = append(order, key)
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	stats.Read = len(index)
	for i, key := range keys {
		var hit *entry
		if opt.Substring {
			for _, hk := range order {
				if strings.Contains(hk, key) {
					e := index[hk]
					hit = &e
					break
				}
			}
		} else if e, ok := index[key]; ok {
			hit = &e
		}
		if hit == nil {
			stats.Skipped++
			logger.Warn("name not found in FASTA", "name", opt.Targets[i])
			continue
		}
		if err := fasta.WriteRecord(w, hit.header, hit.seq, opt.Wrap); err != nil {
			return stats, err
		}
		stats.Written++
	}
	return stats, nil
}

func (opt NamesOptions) streamFastaOrder(w io.Writer, r io.Reader, keys []string) (Stats, error) {
	var stats Stats
	err := fasta.Scan(r, func(rec fasta.Record) error {
		stats.Read++
		hay := opt.fold(rec.Header())
		id := opt.fold(rec.ID)

		match := false
		if opt.Substring {
			for _, k := range keys {
				if strings.Contains(hay, k) {
					match = true
					break
				}
			}
		} else {
			for _, k := range keys {
				if id == k {
					match = true
					break
				}
			}
		}
		if !match {
			stats.Skipped++
			return nil
		}
		if err := fasta.WriteRecord(w, rec.Header(), rec.Seq, opt.Wrap); err != nil {
			return err
		}
		stats.Written++
		return nil
	})
	return stats, err
}

func (opt NamesOptions) fold(s string) string {
	if opt.IgnoreCase {
		return strings.ToLower(s)
	}
	return s
}
