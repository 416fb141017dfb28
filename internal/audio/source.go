package audio

import (
	"errors"
	"time"
)

// ErrStreamClosed is returned by ReadBatch once the capture device has
// stopped producing frames and every buffered frame has been drained.
var ErrStreamClosed = errors.New("capture stream closed")

// ErrBatchTimeout is returned by ReadBatch when no frames arrived
// within the poll timeout. The stream is still alive; callers use the
// timeout only to stay responsive to a stop signal.
var ErrBatchTimeout = errors.New("no frames within poll timeout")

// CaptureSource supplies discrete batches of audio frames from a live
// device. Implementations own the device; Close releases it and ends
// the stream.
type CaptureSource interface {
	// ReadBatch blocks up to timeout for at least one frame, then
	// returns every frame currently available without further waiting.
	ReadBatch(timeout time.Duration) ([]Frame, error)
	Close() error
}
