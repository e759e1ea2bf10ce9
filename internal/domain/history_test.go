package domain

import (
	"math"
	"testing"
	"time"
)

func TestHistory_Record(t *testing.T) {
	h := NewHistory()
	key := CanonicalPath(`C:\Tools\App.exe`)

	first := time.Unix(1_700_000_000, 0)
	rec := h.Record(key, first)
	if rec.Rank != 1 {
		t.Errorf("expected rank 1 after first launch, got %d", rec.Rank)
	}
	if rec.Access != first.Unix() {
		t.Errorf("expected access %d, got %d", first.Unix(), rec.Access)
	}

	second := first.Add(90 * time.Second)
	rec = h.Record(key, second)
	if rec.Rank != 2 {
		t.Errorf("expected rank 2 after second launch, got %d", rec.Rank)
	}
	if rec.Access < first.Unix() || rec.Access != second.Unix() {
		t.Errorf("expected access %d, got %d", second.Unix(), rec.Access)
	}

	if got, ok := h.Lookup(key); !ok || got != rec {
		t.Errorf("expected stored record %+v, got %+v (found=%v)", rec, got, ok)
	}
	if len(h) != 1 {
		t.Errorf("expected 1 record, got %d", len(h))
	}
}

func TestHistory_RecordSaturatesRank(t *testing.T) {
	h := History{"a": {Rank: math.MaxUint32, Access: 10}}
	rec := h.Record("a", time.Unix(20, 0))
	if rec.Rank != math.MaxUint32 {
		t.Errorf("expected rank to stay at max, got %d", rec.Rank)
	}
	if rec.Access != 20 {
		t.Errorf("expected access 20, got %d", rec.Access)
	}
}

func TestHistory_Clone(t *testing.T) {
	h := History{"a": {Rank: 1, Access: 10}}
	c := h.Clone()
	c.Record("a", time.Unix(20, 0))
	c.Record("b", time.Unix(20, 0))

	if h["a"].Rank != 1 || len(h) != 1 {
		t.Errorf("clone shares state with original: %+v", h)
	}

	var empty History
	if got := empty.Clone(); got == nil {
		t.Error("expected a non-nil clone of a nil history")
	}
}

func TestCatalog_LastWriterWins(t *testing.T) {
	c := make(Catalog)
	c.Add(Program{Title: "Tool.exe", Source: SourcePath, Path: "/bin/Tool.exe"})
	c.Add(Program{Title: "tool.exe", Source: SourcePath, Path: "/bin/tool.exe"})

	if len(c) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(c))
	}
	p, ok := c["/bin/tool.exe"]
	if !ok {
		t.Fatal("expected entry under case-folded key")
	}
	if p.Title != "tool.exe" {
		t.Errorf("expected later entry to win, got %s", p.Title)
	}
}

func TestCatalog_ProgramsSortedByKey(t *testing.T) {
	c := make(Catalog)
	c.Add(Program{Title: "b", Path: "/B"})
	c.Add(Program{Title: "c", Path: "/c"})
	c.Add(Program{Title: "a", Path: "/a"})

	got := c.Programs()
	want := []string{"/a", "/B", "/c"}
	for i, w := range want {
		if got[i].Path != w {
			t.Errorf("position %d: expected %s, got %s", i, w, got[i].Path)
		}
	}
}
