package fasta

import "os"

// LengthIndex maps sequence identifiers to residue counts, remembering
// the order in which identifiers appear in the file.
type LengthIndex struct {
	Len map[string]int `json:"len"`
	IDs []string       `json:"ids"`
}

// NewLengthIndex returns an empty index.
func NewLengthIndex() *LengthIndex {
	return &LengthIndex{Len: make(map[string]int)}
}

// Add records the length for id, keeping first-seen file order. A repeated
// identifier overwrites the stored length without duplicating the order
// entry.
func (ix *LengthIndex) Add(id string, n int) {
	if _, seen := ix.Len[id]; !seen {
		ix.IDs = append(ix.IDs, id)
	}
	ix.Len[id] = n
}

// Get returns the length for id and whether it is present.
func (ix *LengthIndex) Get(id string) (int, bool) {
	n, ok := ix.Len[id]
	return n, ok
}

// Lengths builds a LengthIndex by streaming the FASTA at path. A missing,
// empty, or unreadable file yields an empty index: absent length sources
// are an expected condition, not an error.
func Lengths(path string) *LengthIndex {
	ix := NewLengthIndex()
	if path == "" {
		return ix
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		return ix
	}
	_ = ScanFile(path, func(r Record) error {
		ix.Add(r.ID, len(r.Seq))
		return nil
	})
	return ix
}
