package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devbydaniel/meetnotes/internal/audio"
	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
	"github.com/devbydaniel/meetnotes/internal/domain/meeting/usecases"
)

type stubSource struct {
	closed bool
}

func (s *stubSource) ReadBatch(timeout time.Duration) ([]audio.Frame, error) {
	if s.closed {
		return nil, audio.ErrStreamClosed
	}
	return nil, audio.ErrBatchTimeout
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

type stubSTT struct {
	text string
}

func (s *stubSTT) Transcribe(ctx context.Context, clip audio.Clip, language string) (string, error) {
	return s.text, nil
}

func newTestModel(t *testing.T) (Model, *stubSource) {
	t.Helper()
	store := meeting.NewStore(t.TempDir())
	rec := &usecases.Record{
		Store:         store,
		STT:           &stubSTT{text: "hello. "},
		FlushInterval: time.Nanosecond, // every batch flushes
	}
	sess, err := rec.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	src := &stubSource{}
	return New(sess, src), src
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestWindowSizeMakesModelReady(t *testing.T) {
	m, _ := newTestModel(t)
	if m.ready {
		t.Error("new model should not be ready")
	}
	m = sized(t, m)
	if !m.ready {
		t.Error("model should be ready after window size")
	}
}

func TestBatchUpdatesTranscript(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	batch := []audio.Frame{{Data: []byte{1, 0}, SampleRate: 16000, Channels: 1, SampleWidth: 2}}
	updated, cmd := m.Update(BatchMsg{Frames: batch})
	m = updated.(Model)

	if m.session.Transcript() != "hello. " {
		t.Errorf("transcript = %q", m.session.Transcript())
	}
	if m.flushes != 1 {
		t.Errorf("flushes = %d, want 1", m.flushes)
	}
	if cmd == nil {
		t.Error("batch should re-arm the read loop")
	}
}

func TestQuitKeyClosesSource(t *testing.T) {
	m, src := newTestModel(t)
	m = sized(t, m)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	if !src.closed {
		t.Error("source should be closed after quit key")
	}
	if !m.stopping {
		t.Error("model should be stopping")
	}
}

func TestStreamClosedStopsSession(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	updated, cmd := m.Update(StreamClosedMsg{})
	m = updated.(Model)

	if m.Err != nil {
		t.Fatalf("unexpected error: %v", m.Err)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	// The session is closed; further frames are a bug.
	err := m.session.OnFrames(context.Background(), []audio.Frame{{Data: []byte{1, 0}, SampleRate: 16000, Channels: 1, SampleWidth: 2}})
	if !errors.Is(err, usecases.ErrSessionClosed) {
		t.Errorf("OnFrames after stream close = %v, want ErrSessionClosed", err)
	}
}
