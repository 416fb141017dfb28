package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// FFmpegSource captures microphone audio through an ffmpeg child
// process streaming raw s16le PCM on stdout. Frames are read by a
// background goroutine into an internal queue so the device callback
// never blocks on the consumer.
type FFmpegSource struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	frames chan Frame
	closed bool
}

const (
	captureSampleRate = 16000
	captureChunkBytes = 4096
	captureQueueSize  = 64
)

// CheckFFmpeg verifies ffmpeg is installed.
func CheckFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found. Install with: brew install ffmpeg")
	}
	return nil
}

// NewFFmpegSource starts capturing from the given input device.
// An empty device selects the platform default.
func NewFFmpegSource(device string) (*FFmpegSource, error) {
	if err := CheckFFmpeg(); err != nil {
		return nil, err
	}

	format, input := platformInput(device)
	cmd := exec.Command("ffmpeg",
		"-f", format,
		"-i", input,
		"-ac", "1",
		"-ar", fmt.Sprint(captureSampleRate),
		"-f", "s16le",
		"pipe:1",
	)
	cmd.Stderr = nil

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening capture pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting ffmpeg: %w", err)
	}

	s := &FFmpegSource{
		cmd:    cmd,
		stdout: stdout,
		frames: make(chan Frame, captureQueueSize),
	}
	go s.readLoop()
	return s, nil
}

func platformInput(device string) (format, input string) {
	switch runtime.GOOS {
	case "darwin":
		if device == "" {
			device = ":default"
		}
		return "avfoundation", device
	default:
		if device == "" {
			device = "default"
		}
		return "pulse", device
	}
}

func (s *FFmpegSource) readLoop() {
	defer close(s.frames)
	for {
		chunk := make([]byte, captureChunkBytes)
		n, err := io.ReadFull(s.stdout, chunk)
		if n > 0 {
			s.frames <- Frame{
				Data:        chunk[:n],
				SampleRate:  captureSampleRate,
				Channels:    1,
				SampleWidth: 2,
			}
		}
		if err != nil {
			return
		}
	}
}

// ReadBatch implements CaptureSource.
func (s *FFmpegSource) ReadBatch(timeout time.Duration) ([]Frame, error) {
	var batch []Frame

	select {
	case f, ok := <-s.frames:
		if !ok {
			return nil, ErrStreamClosed
		}
		batch = append(batch, f)
	case <-time.After(timeout):
		return nil, ErrBatchTimeout
	}

	// Drain whatever else already arrived.
	for {
		select {
		case f, ok := <-s.frames:
			if !ok {
				return batch, nil
			}
			batch = append(batch, f)
		default:
			return batch, nil
		}
	}
}

// Close stops the capture process and ends the stream.
func (s *FFmpegSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Signal(os.Interrupt)
	}
	_ = s.stdout.Close()
	return s.cmd.Wait()
}
