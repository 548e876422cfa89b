package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Record represents a parsed FASTA record
type Record struct {
	ID   string // first whitespace token of the header
	Desc string // header remainder after the ID, "" if none
	Seq  string // concatenated sequence lines, whitespace-stripped

	raw string // header exactly as read, internal whitespace intact
}

// Header returns the full header content without the leading '>',
// byte-for-byte as it appeared in the input.
func (r Record) Header() string {
	if r.raw != "" {
		return r.raw
	}
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Scan parses FASTA records from r and calls emit for each complete
// record, in file order. Content before the first '>' header is dropped.
// Blank lines are skipped. Scanning stops on the first emit error.
func Scan(r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		started bool
		cur     Record
		seq     strings.Builder
	)

	flush := func() error {
		if !started {
			return nil
		}
		cur.Seq = seq.String()
		seq.Reset()
		return emit(cur)
	}

	for sc.Scan() {
		raw := strings.TrimSuffix(sc.Text(), "\r")
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			started = true
			// Keep the header verbatim past the '>': downstream writers
			// must reproduce it byte-for-byte, tabs and all.
			cur = Record{raw: raw[strings.IndexByte(raw, '>')+1:]}
			header := strings.TrimSpace(line[1:])
			if fields := strings.Fields(header); len(fields) > 0 {
				cur.ID = fields[0]
				cur.Desc = strings.TrimSpace(strings.TrimPrefix(header, fields[0]))
			}
			continue
		}
		if !started {
			continue // junk before the first header
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return flush()
}

// ScanFile opens path and scans it. "-" reads stdin; a ".gz" suffix
// enables transparent decompression.
func ScanFile(path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(rc, emit)
}

// Open opens a FASTA input. "-" reads stdin; a ".gz" suffix enables
// transparent decompression.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
