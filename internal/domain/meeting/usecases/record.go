package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devbydaniel/meetnotes/internal/audio"
	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
)

// SpeechToText converts one self-contained audio clip to text.
type SpeechToText interface {
	Transcribe(ctx context.Context, clip audio.Clip, language string) (string, error)
}

// DefaultFlushInterval is the wall-clock cadence between partial
// transcription flushes while recording.
const DefaultFlushInterval = 10 * time.Second

// ErrSessionClosed reports frames fed to a session after Stop. That is
// a caller bug, not a recoverable condition.
var ErrSessionClosed = errors.New("recording session already stopped")

// ErrTranscription wraps speech-to-text failures during a flush. The
// window buffer is retained, so the audio is retried on the next
// cadence cycle together with newly arrived frames.
var ErrTranscription = errors.New("transcription failed")

// Record starts recording sessions.
type Record struct {
	Store         *meeting.Store
	STT           SpeechToText
	Language      string
	FlushInterval time.Duration
	Now           func() time.Time // defaults to time.Now
}

// Start allocates a new session from the current timestamp and creates
// its storage directory. A directory collision is fatal: two sessions
// must never merge.
func (r *Record) Start() (*RecordingSession, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	interval := r.FlushInterval
	if interval <= 0 {
		interval = DefaultFlushInterval
	}

	createdAt := now()
	id := meeting.NewSessionID(createdAt)
	if err := r.Store.Create(id); err != nil {
		return nil, err
	}

	return &RecordingSession{
		store:     r.Store,
		stt:       r.STT,
		language:  r.Language,
		interval:  interval,
		now:       now,
		id:        id,
		createdAt: createdAt,
		total:     audio.NewBuffer(),
		window:    audio.NewBuffer(),
		lastFlush: createdAt,
	}, nil
}

// RecordingSession owns one active recording end-to-end: it
// accumulates frames, persists the growing audio after every batch,
// and runs the time-gated transcription cadence. A session is driven
// by a single goroutine; frame batches are processed one at a time.
type RecordingSession struct {
	store    *meeting.Store
	stt      SpeechToText
	language string
	interval time.Duration
	now      func() time.Time

	id        meeting.SessionID
	createdAt time.Time

	total      *audio.Buffer // full session audio, persisted every batch
	window     *audio.Buffer // audio since the last flush
	transcript string
	lastFlush  time.Time
	closed     bool
}

// ID returns the session's identifier.
func (s *RecordingSession) ID() meeting.SessionID {
	return s.id
}

// CreatedAt returns when the session started.
func (s *RecordingSession) CreatedAt() time.Time {
	return s.createdAt
}

// Transcript returns the transcript accumulated so far.
func (s *RecordingSession) Transcript() string {
	return s.transcript
}

// Duration returns how much audio the session holds.
func (s *RecordingSession) Duration() time.Duration {
	return s.total.Duration()
}

// OnFrames merges a batch into the session, persists the full audio so
// a crash never loses confirmed frames, and runs the cadence check. A
// transcription failure is reported wrapped in ErrTranscription; the
// frames themselves are already safely accumulated.
func (s *RecordingSession) OnFrames(ctx context.Context, batch []audio.Frame) error {
	if s.closed {
		return ErrSessionClosed
	}
	if len(batch) == 0 {
		return nil
	}

	if err := s.total.Append(batch); err != nil {
		return fmt.Errorf("accumulating audio: %w", err)
	}
	if err := s.window.Append(batch); err != nil {
		return fmt.Errorf("accumulating window: %w", err)
	}

	if err := s.store.WriteAudio(s.id, s.total.WAV()); err != nil {
		return err
	}

	if s.flushDue(s.now()) {
		return s.flush(ctx)
	}
	return nil
}

// flushDue is the cadence decision: flush when the window holds audio
// and at least one interval of wall-clock time has passed. Silence
// never triggers a speech-to-text call.
func (s *RecordingSession) flushDue(now time.Time) bool {
	return s.window.Len() > 0 && now.Sub(s.lastFlush) > s.interval
}

// flush sends the window to speech-to-text, appends the result to the
// persisted transcript, and resets the window. On failure the window
// is left untouched for the next cycle.
func (s *RecordingSession) flush(ctx context.Context) error {
	s.lastFlush = s.now()

	text, err := s.stt.Transcribe(ctx, s.window.Clip(), s.language)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTranscription, err)
	}

	updated := s.transcript + text
	if err := s.store.WriteTranscript(s.id, updated); err != nil {
		return err
	}
	s.transcript = updated
	s.window.Reset()
	return nil
}

// Stop ends the session. Any audio still in the window is flushed
// regardless of the cadence gate so no trailing speech is lost. After
// Stop the session accepts no further frames.
func (s *RecordingSession) Stop(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true

	if s.window.Len() > 0 {
		return s.flush(ctx)
	}
	return nil
}
