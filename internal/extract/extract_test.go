package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.pdf"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}

	var unreadable *UnreadableDocumentError
	if !errors.As(err, &unreadable) {
		t.Fatalf("expected UnreadableDocumentError, got %T: %v", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestExtractCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("definitely not a pdf"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Extract(path)
	if err == nil {
		t.Fatalf("expected error for corrupt file")
	}

	var unreadable *UnreadableDocumentError
	if !errors.As(err, &unreadable) {
		t.Fatalf("expected UnreadableDocumentError, got %T: %v", err, err)
	}
	if unreadable.Path != path {
		t.Fatalf("expected path %q in error, got %q", path, unreadable.Path)
	}
}

func TestFactsInfo(t *testing.T) {
	facts := &Facts{Metadata: map[string]string{
		"Title":    "Resume",
		"Author":   "Jane Doe",
		"Producer": "typst",
		"Keywords": "ignored",
	}}

	info, err := facts.Info()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Title != "Resume" || info.Author != "Jane Doe" || info.Producer != "typst" {
		t.Fatalf("unexpected info: %+v", info)
	}

	empty, err := (&Facts{}).Info()
	if err != nil {
		t.Fatalf("unexpected error for empty metadata: %v", err)
	}
	if empty.Title != "" || empty.Author != "" {
		t.Fatalf("expected zero info, got %+v", empty)
	}
}

func TestSortedKeys(t *testing.T) {
	got := sortedKeys(map[string]struct{}{
		"Helvetica":  {},
		"Arial-Bold": {},
		"Courier":    {},
	})

	want := []string{"Arial-Bold", "Courier", "Helvetica"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}
