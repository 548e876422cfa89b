package fasta

import (
	"strings"
	"testing"
)

func collect(t *testing.T, input string) []Record {
	t.Helper()
	var records []Record
	if err := Scan(strings.NewReader(input), func(r Record) error {
		records = append(records, r)
		return nil
	}); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return records
}

func TestScan_BasicRecords(t *testing.T) {
	input := ">seqA description here\nMKV\nLLT\n>seqB\nACDEF\n"
	records := collect(t, input)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "seqA" {
		t.Errorf("expected ID seqA, got %q", records[0].ID)
	}
	if records[0].Desc != "description here" {
		t.Errorf("expected description, got %q", records[0].Desc)
	}
	if records[0].Seq != "MKVLLT" {
		t.Errorf("expected concatenated sequence MKVLLT, got %q", records[0].Seq)
	}
	if records[1].ID != "seqB" || records[1].Desc != "" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestScan_JunkBeforeFirstHeaderDropped(t *testing.T) {
	records := collect(t, "GARBAGE\nMORE\n>seqA\nMKV\n")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Seq != "MKV" {
		t.Errorf("junk leaked into sequence: %q", records[0].Seq)
	}
}

func TestScan_BlankLinesSkipped(t *testing.T) {
	records := collect(t, ">seqA\n\nMKV\n\nLLT\n\n")
	if len(records) != 1 || records[0].Seq != "MKVLLT" {
		t.Fatalf("blank lines mishandled: %+v", records)
	}
}

func TestScan_EmptySequenceRecord(t *testing.T) {
	records := collect(t, ">empty\n>seqB\nAC\n")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "empty" || records[0].Seq != "" {
		t.Errorf("expected empty sequence for first record, got %+v", records[0])
	}
}

func TestScan_SurroundingWhitespaceStripped(t *testing.T) {
	records := collect(t, ">seqA\n  MKV  \n\tLLT\t\n")
	if records[0].Seq != "MKVLLT" {
		t.Errorf("whitespace not stripped: %q", records[0].Seq)
	}
}

func TestRecord_Header(t *testing.T) {
	r := Record{ID: "seqA", Desc: "some description"}
	if r.Header() != "seqA some description" {
		t.Errorf("unexpected header: %q", r.Header())
	}
	r = Record{ID: "seqB"}
	if r.Header() != "seqB" {
		t.Errorf("unexpected header: %q", r.Header())
	}
}

func TestScan_TabDelimitedHeaderID(t *testing.T) {
	records := collect(t, ">seqA\textra stuff\nMKV\n")
	if records[0].ID != "seqA" {
		t.Errorf("tab-separated identifier not extracted: %q", records[0].ID)
	}
}

func TestScan_HeaderPreservedVerbatim(t *testing.T) {
	records := collect(t, ">seqA\tdesc with tab\nMKV\n>seqB   spaced   out\nAC\n")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Header(); got != "seqA\tdesc with tab" {
		t.Errorf("tab header rewritten: %q", got)
	}
	if got := records[1].Header(); got != "seqB   spaced   out" {
		t.Errorf("multi-space header rewritten: %q", got)
	}
}
