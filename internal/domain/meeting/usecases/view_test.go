package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
)

type fakeChat struct {
	calls      int
	lastPrompt string
	err        error
}

func (f *fakeChat) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return "Meeting summary:\n- shipping Friday.\n\nMeeting agreements:\n- ship on Friday", nil
}

func newTestView(t *testing.T) (*View, *fakeChat, *meeting.Store) {
	t.Helper()
	store := meeting.NewStore(t.TempDir())
	chat := &fakeChat{}
	summarize := &Summarize{
		Store:          store,
		Chat:           chat,
		PromptTemplate: "summarize: ###%s###",
	}
	return &View{Store: store, Summarize: summarize}, chat, store
}

func TestViewGeneratesSummaryOnce(t *testing.T) {
	v, chat, store := newTestView(t)
	ctx := context.Background()

	id := meeting.SessionID("2024_01_01_10_00_00")
	if err := store.Create(id); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.WriteTranscript(id, "We agreed to ship Friday."); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	view, err := v.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Summary == "" {
		t.Fatal("summary not generated")
	}
	if chat.calls != 1 {
		t.Fatalf("chat calls = %d, want 1", chat.calls)
	}
	if !strings.Contains(chat.lastPrompt, "###We agreed to ship Friday.###") {
		t.Errorf("prompt %q missing sentinel-delimited transcript", chat.lastPrompt)
	}

	persisted, err := store.ReadSummary(id)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if persisted != view.Summary {
		t.Error("summary not persisted verbatim")
	}

	// Second view reads the stored file; no further chat call.
	if _, err := v.Get(ctx, id); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if chat.calls != 1 {
		t.Errorf("chat calls after second get = %d, want 1", chat.calls)
	}
}

func TestViewChatFailureWritesNothing(t *testing.T) {
	v, chat, store := newTestView(t)
	ctx := context.Background()

	id := meeting.SessionID("2024_01_01_10_00_00")
	if err := store.Create(id); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.WriteTranscript(id, "hello"); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	chat.err = errors.New("rate limited")
	if _, err := v.Get(ctx, id); err == nil {
		t.Fatal("expected error from failed summary generation")
	}

	summary, err := store.ReadSummary(id)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if summary != "" {
		t.Errorf("summary = %q, want empty after failure", summary)
	}

	// The failure left the session summariless, so the next access
	// retries and succeeds.
	chat.err = nil
	view, err := v.Get(ctx, id)
	if err != nil {
		t.Fatalf("retry get: %v", err)
	}
	if view.Summary == "" {
		t.Error("summary still empty after retry")
	}
}

func TestViewEmptyTranscriptSkipsSummary(t *testing.T) {
	v, chat, store := newTestView(t)

	id := meeting.SessionID("2024_01_01_10_00_00")
	if err := store.Create(id); err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := v.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if chat.calls != 0 {
		t.Errorf("chat calls = %d, want 0 for empty transcript", chat.calls)
	}
	if view.Summary != "" {
		t.Errorf("summary = %q, want empty", view.Summary)
	}
}

func TestViewUnknownSession(t *testing.T) {
	v, _, _ := newTestView(t)

	_, err := v.Get(context.Background(), "2030_01_01_00_00_00")
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("get = %v, want ErrNoSession", err)
	}
	if err := v.SetTitle("2030_01_01_00_00_00", "ghost"); !errors.Is(err, ErrNoSession) {
		t.Errorf("set title = %v, want ErrNoSession", err)
	}
}

func TestViewSetTitle(t *testing.T) {
	v, _, store := newTestView(t)

	id := meeting.SessionID("2024_01_01_10_00_00")
	if err := store.Create(id); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := v.SetTitle(id, "Quarterly planning"); err != nil {
		t.Fatalf("set title: %v", err)
	}

	title, err := store.ReadTitle(id)
	if err != nil {
		t.Fatalf("read title: %v", err)
	}
	if title != "Quarterly planning" {
		t.Errorf("title = %q", title)
	}
}
