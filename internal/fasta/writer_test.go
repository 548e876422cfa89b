package fasta

import (
	"strings"
	"testing"
)

func TestWriteRecord_NoWrap(t *testing.T) {
	var sb strings.Builder
	if err := WriteRecord(&sb, "seqA description", "MKVLLT", 0); err != nil {
		t.Fatal(err)
	}
	want := ">seqA description\nMKVLLT\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestWriteRecord_Wrap(t *testing.T) {
	var sb strings.Builder
	if err := WriteRecord(&sb, "seqA", "MKVLLTAC", 3); err != nil {
		t.Fatal(err)
	}
	want := ">seqA\nMKV\nLLT\nAC\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestWriteRecord_RoundTrip(t *testing.T) {
	var sb strings.Builder
	if err := WriteRecord(&sb, "seqA some desc", "MKVLLTACDEF", 4); err != nil {
		t.Fatal(err)
	}
	records := collect(t, sb.String())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Header() != "seqA some desc" {
		t.Errorf("header not preserved: %q", records[0].Header())
	}
	if records[0].Seq != "MKVLLTACDEF" {
		t.Errorf("sequence not preserved: %q", records[0].Seq)
	}
}
