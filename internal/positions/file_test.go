package positions

import (
	"os"
	"path/filepath"
	"testing"
)

func writePositions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pos.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile_PerIDMode(t *testing.T) {
	spec, err := ReadFile(writePositions(t, "seqA:10-20,40-50\nseqB:-\n"))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Mode != ModePerID {
		t.Fatalf("expected per-id mode, got %v", spec.Mode)
	}
	if got := spec.Resolve("seqA", 1); len(got) != 2 {
		t.Errorf("seqA ranges wrong: %v", got)
	}
	if got := spec.Resolve("seqB", 2); !got.HasNoCut() {
		t.Errorf("seqB should resolve to the sentinel: %v", got)
	}
	if got := spec.Resolve("unknown", 3); got != nil {
		t.Errorf("unknown id should resolve to nothing, got %v", got)
	}
}

func TestReadFile_PerID_ColonlessLinesIgnored(t *testing.T) {
	spec, err := ReadFile(writePositions(t, "10-20\nseqA:5-6\n"))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Mode != ModePerID {
		t.Fatalf("a single colon line makes the whole file per-id, got %v", spec.Mode)
	}
	if len(spec.PerID) != 1 {
		t.Errorf("colonless line should be ignored in per-id mode: %v", spec.PerID)
	}
}

func TestReadFile_PerID_EmptySpecSkipped(t *testing.T) {
	spec, err := ReadFile(writePositions(t, "seqA:\nseqB:1-2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := spec.PerID["seqA"]; ok {
		t.Error("identifier with an empty spec should be skipped")
	}
}

func TestReadFile_GlobalSingleLine(t *testing.T) {
	spec, err := ReadFile(writePositions(t, "# a comment\n\n10-20\n"))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Mode != ModeGlobal {
		t.Fatalf("expected global mode, got %v", spec.Mode)
	}
	for ord := 1; ord <= 3; ord++ {
		if got := spec.Resolve("anything", ord); len(got) != 1 || got[0].Start != 10 {
			t.Errorf("global spec should apply to every record, ord %d got %v", ord, got)
		}
	}
}

func TestReadFile_GlobalEmptyFile(t *testing.T) {
	spec, err := ReadFile(writePositions(t, "# only comments\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Mode != ModeGlobal || spec.Global != nil {
		t.Errorf("comment-only file should be an empty global spec: %+v", spec)
	}
}

func TestReadFile_OrderedMode(t *testing.T) {
	spec, err := ReadFile(writePositions(t, "10-20\n-\n30-40\n"))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Mode != ModeOrdered {
		t.Fatalf("expected ordered mode, got %v", spec.Mode)
	}
	if got := spec.Resolve("x", 1); len(got) != 1 || got[0].Start != 10 {
		t.Errorf("line 1 wrong: %v", got)
	}
	if got := spec.Resolve("x", 2); !got.HasNoCut() {
		t.Errorf("line 2 should be the sentinel: %v", got)
	}
	if got := spec.Resolve("x", 4); got != nil {
		t.Errorf("records beyond the last line receive no ranges, got %v", got)
	}
}

func TestReadFile_MalformedRangeFatal(t *testing.T) {
	if _, err := ReadFile(writePositions(t, "10-20\nbogus\n")); err == nil {
		t.Error("malformed range line must be a fatal input error")
	}
}

func TestInline_AlwaysGlobal(t *testing.T) {
	spec, err := Inline("5-9")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Mode != ModeGlobal {
		t.Errorf("inline specs are always global, got %v", spec.Mode)
	}
}

func TestMode_String(t *testing.T) {
	if ModePerID.String() != "per-id" || ModeOrdered.String() != "ordered" || ModeGlobal.String() != "global" {
		t.Error("unexpected mode names")
	}
}
