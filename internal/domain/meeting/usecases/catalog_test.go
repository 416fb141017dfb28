package usecases

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
)

func TestCatalogListMostRecentFirst(t *testing.T) {
	store := meeting.NewStore(t.TempDir())
	c := &Catalog{Store: store}

	for _, id := range []meeting.SessionID{
		"2024_01_01_10_00_00",
		"2024_01_03_10_00_00",
		"2024_01_02_10_00_00",
	} {
		if err := store.Create(id); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	entries, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	want := []meeting.SessionID{
		"2024_01_03_10_00_00",
		"2024_01_02_10_00_00",
		"2024_01_01_10_00_00",
	}
	for i := range want {
		if entries[i].ID != want[i] {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].ID, want[i])
		}
	}
}

func TestCatalogLabelIncludesTitle(t *testing.T) {
	store := meeting.NewStore(t.TempDir())
	c := &Catalog{Store: store}

	id := meeting.SessionID("2024_01_01_10_00_00")
	if err := store.Create(id); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.WriteTitle(id, "Budget review"); err != nil {
		t.Fatalf("write title: %v", err)
	}

	entries, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	label := entries[0].Label
	if !strings.Contains(label, "2024/01/01 10:00:00") {
		t.Errorf("label %q missing formatted timestamp", label)
	}
	if !strings.Contains(label, "Budget review") {
		t.Errorf("label %q missing title", label)
	}
}

func TestCatalogLabelWithoutTitle(t *testing.T) {
	store := meeting.NewStore(t.TempDir())
	c := &Catalog{Store: store}

	id := meeting.SessionID("2024_01_01_10_00_00")
	if err := store.Create(id); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries[0].Label != "2024/01/01 10:00:00" {
		t.Errorf("label = %q, want bare timestamp", entries[0].Label)
	}
}

func TestCatalogSkipsMalformedDirs(t *testing.T) {
	root := t.TempDir()
	store := meeting.NewStore(root)
	c := &Catalog{Store: store}

	if err := store.Create("2024_01_01_10_00_00"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "not-a-session"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	entries, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entries = %d, want 1", len(entries))
	}
}

func TestCatalogHasSummary(t *testing.T) {
	store := meeting.NewStore(t.TempDir())
	c := &Catalog{Store: store}

	with := meeting.SessionID("2024_01_02_10_00_00")
	without := meeting.SessionID("2024_01_01_10_00_00")
	for _, id := range []meeting.SessionID{with, without} {
		if err := store.Create(id); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := store.WriteSummary(with, "Meeting summary:\n- shipped."); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	entries, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !entries[0].HasSummary {
		t.Error("entry with summary not flagged")
	}
	if entries[1].HasSummary {
		t.Error("entry without summary flagged")
	}
}
