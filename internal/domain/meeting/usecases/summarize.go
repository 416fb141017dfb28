package usecases

import (
	"context"
	"fmt"

	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
)

// ChatCompleter turns one prompt into one completion. No multi-turn
// context is modeled.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Summarize generates a meeting summary from the stored transcript.
// The requested structure (prose summary plus agreement bullets) is
// encoded in the prompt template; the returned text is persisted
// verbatim, without parsing.
type Summarize struct {
	Store *meeting.Store
	Chat  ChatCompleter
	// PromptTemplate must contain one %s verb receiving the transcript.
	PromptTemplate string
}

// Execute reads the session's full transcript, runs one chat call, and
// persists the result as the summary. A failed call writes nothing, so
// the session stays in its "no summary yet" state and the generation
// is naturally retried on next access. Regeneration overwrites the
// summary wholesale.
func (s *Summarize) Execute(ctx context.Context, id meeting.SessionID) (string, error) {
	transcript, err := s.Store.ReadTranscript(id)
	if err != nil {
		return "", err
	}
	if transcript == "" {
		return "", fmt.Errorf("session %s has no transcript to summarize", id)
	}

	summary, err := s.Chat.Complete(ctx, fmt.Sprintf(s.PromptTemplate, transcript))
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	if summary == "" {
		return "", fmt.Errorf("empty summary for session %s", id)
	}

	if err := s.Store.WriteSummary(id, summary); err != nil {
		return "", err
	}
	return summary, nil
}
