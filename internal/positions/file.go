package positions

import (
	"bufio"
	"os"
	"strings"
)

// Mode is the addressing mode of a positions source.
type Mode int

const (
	// ModePerID maps ranges to records by identifier ("id:10-20" lines).
	ModePerID Mode = iota
	// ModeOrdered maps line N of the file to the N-th FASTA record.
	ModeOrdered
	// ModeGlobal applies one spec to every record.
	ModeGlobal
)

func (m Mode) String() string {
	switch m {
	case ModePerID:
		return "per-id"
	case ModeOrdered:
		return "ordered"
	default:
		return "global"
	}
}

// Spec is a classified positions specification: exactly one of the three
// payloads is populated, according to Mode.
type Spec struct {
	Mode    Mode
	PerID   map[string]RangeList
	Ordered []RangeList
	Global  RangeList
}

// Resolve returns the ranges applying to the record with the given
// identifier at the given 1-based ordinal. A nil result means the record
// has no specification and is skipped by extraction.
func (s *Spec) Resolve(id string, ordinal int) RangeList {
	switch s.Mode {
	case ModePerID:
		return s.PerID[id]
	case ModeOrdered:
		if ordinal >= 1 && ordinal <= len(s.Ordered) {
			return s.Ordered[ordinal-1]
		}
		return nil
	default:
		return s.Global
	}
}

// Inline classifies an inline positions string: always global.
func Inline(spec string) (*Spec, error) {
	ranges, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}
	return &Spec{Mode: ModeGlobal, Global: ranges}, nil
}

// ReadFile reads and classifies a positions file. Blank lines and lines
// starting with '#' are ignored. Classification:
//   - any remaining line containing ':' makes the whole file per-id;
//     colonless lines are then skipped
//   - otherwise a single line is a global spec
//   - otherwise each line N applies to the N-th FASTA record (ordered)
func ReadFile(path string) (*Spec, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var lines []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return classify(lines)
}

func classify(lines []string) (*Spec, error) {
	perID := false
	for _, ln := range lines {
		if strings.Contains(ln, ":") {
			perID = true
			break
		}
	}

	if perID {
		spec := &Spec{Mode: ModePerID, PerID: make(map[string]RangeList)}
		for _, ln := range lines {
			id, rest, found := strings.Cut(ln, ":")
			if !found {
				continue
			}
			id = strings.TrimSpace(id)
			rest = strings.TrimSpace(rest)
			if rest == "" {
				continue
			}
			ranges, err := ParseSpec(rest)
			if err != nil {
				return nil, err
			}
			spec.PerID[id] = ranges
		}
		return spec, nil
	}

	if len(lines) <= 1 {
		spec := &Spec{Mode: ModeGlobal}
		if len(lines) == 1 {
			ranges, err := ParseSpec(lines[0])
			if err != nil {
				return nil, err
			}
			spec.Global = ranges
		}
		return spec, nil
	}

	spec := &Spec{Mode: ModeOrdered}
	for _, ln := range lines {
		ranges, err := ParseSpec(ln)
		if err != nil {
			return nil, err
		}
		spec.Ordered = append(spec.Ordered, ranges)
	}
	return spec, nil
}
