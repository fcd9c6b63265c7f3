package exporter

import (
	"bytes"
	"testing"
)

func TestExport(t *testing.T) {
	e := New()

	markdown := `# Overview

The team reviewed **Q3 sales**.

## Decisions
- Ship the beta
- 1. follow up with legal

1. First action
2. Second action
---
Closing notes.`

	data, err := e.Export("Meeting Summary", markdown)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Export() returned empty document")
	}
	// docx files are zip archives
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("Export() output does not look like a docx archive: % x", data[:4])
	}
}

func TestExportEmptyMarkdown(t *testing.T) {
	data, err := New().Export("Meeting Summary", "")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Export() returned empty document for empty markdown")
	}
}

func TestHeadingSize(t *testing.T) {
	tests := []struct {
		level int
		want  uint64
	}{
		{1, 16},
		{2, 14},
		{3, 13},
		{4, fontSize},
		{6, fontSize},
	}

	for _, tt := range tests {
		if got := headingSize(tt.level); got != tt.want {
			t.Errorf("headingSize(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestStripInlineMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold**", "bold"},
		{"__under__", "under"},
		{"`code`", "code"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := stripInlineMarkdown(tt.in); got != tt.want {
			t.Errorf("stripInlineMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
