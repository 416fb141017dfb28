package audio

import "time"

// Frame is one batch of raw PCM samples as delivered by a capture
// device. Frames carry their own format metadata because a stream is
// not required to keep a single format for its whole lifetime, even
// though a fixed format per device is the common case.
type Frame struct {
	Data        []byte
	SampleRate  int // samples per second per channel
	Channels    int
	SampleWidth int // bytes per sample (1 = unsigned 8-bit, 2 = signed 16-bit LE)
}

// Samples returns the number of sample points (per channel) in the frame.
func (f Frame) Samples() int {
	if f.Channels == 0 || f.SampleWidth == 0 {
		return 0
	}
	return len(f.Data) / (f.Channels * f.SampleWidth)
}

// Duration returns the playback duration of the frame.
func (f Frame) Duration() time.Duration {
	if f.SampleRate == 0 {
		return 0
	}
	return time.Duration(f.Samples()) * time.Second / time.Duration(f.SampleRate)
}

// Clip is a self-contained audio snippet ready to hand to a
// speech-to-text service: a complete WAV file plus the format it was
// encoded with.
type Clip struct {
	Data        []byte // WAV container, PCM
	SampleRate  int
	Channels    int
	SampleWidth int
}
