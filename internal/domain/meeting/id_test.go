package meeting

import (
	"testing"
	"time"
)

func TestNewSessionID(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	id := NewSessionID(ts)
	if id != "2024_01_01_10_00_00" {
		t.Errorf("id = %q, want 2024_01_01_10_00_00", id)
	}
}

func TestSessionIDOrderIsChronological(t *testing.T) {
	earlier := NewSessionID(time.Date(2024, 1, 1, 9, 59, 59, 0, time.UTC))
	later := NewSessionID(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	if !(earlier < later) {
		t.Errorf("expected %q < %q", earlier, later)
	}
}

func TestParseSessionID(t *testing.T) {
	ts, err := ParseSessionID("2024_01_01_10_00_00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("time = %v, want %v", ts, want)
	}

	if _, err := ParseSessionID("notes-backup"); err == nil {
		t.Error("expected error for unparseable stem")
	}
}

func TestLabel(t *testing.T) {
	id := SessionID("2024_01_01_10_00_00")
	if got := id.Label(); got != "2024/01/01 10:00:00" {
		t.Errorf("label = %q, want 2024/01/01 10:00:00", got)
	}
}
