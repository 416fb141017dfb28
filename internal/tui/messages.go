package tui

import (
	"time"

	"github.com/devbydaniel/meetnotes/internal/audio"
)

// BatchMsg carries one batch of captured frames into the model.
type BatchMsg struct {
	Frames []audio.Frame
}

// BatchTimeoutMsg signals that the poll timeout elapsed with no
// frames; the read loop is simply re-armed.
type BatchTimeoutMsg struct{}

// StreamClosedMsg signals end of the capture stream.
type StreamClosedMsg struct{}

// CaptureErrorMsg carries a fatal capture failure.
type CaptureErrorMsg struct {
	Err error
}

// TickMsg drives the elapsed-time display.
type TickMsg time.Time
