package audio

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Buffer accumulates PCM frames in arrival order. The first frame
// appended fixes the buffer's format; later frames that arrive in a
// different format are converted to it (bit-depth rescale, channel
// mixdown or duplication, nearest-sample rate conversion) so the
// buffer always holds one contiguous, uniform PCM stream. Reset keeps
// the format and drops the samples.
type Buffer struct {
	sampleRate  int
	channels    int
	sampleWidth int
	data        []byte
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append merges a batch of frames into the buffer, preserving order.
func (b *Buffer) Append(frames []Frame) error {
	for _, f := range frames {
		if err := b.appendFrame(f); err != nil {
			return err
		}
	}
	return nil
}

func (b *Buffer) appendFrame(f Frame) error {
	if f.SampleWidth < 1 || f.SampleWidth > 4 {
		return fmt.Errorf("unsupported sample width %d bytes", f.SampleWidth)
	}
	if f.Channels < 1 || f.SampleRate < 1 {
		return fmt.Errorf("invalid frame format: %d channels at %d Hz", f.Channels, f.SampleRate)
	}

	if b.sampleRate == 0 {
		b.sampleRate = f.SampleRate
		b.channels = f.Channels
		b.sampleWidth = f.SampleWidth
	}

	whole := f.Samples() * f.Channels * f.SampleWidth
	if f.SampleRate == b.sampleRate && f.Channels == b.channels && f.SampleWidth == b.sampleWidth {
		b.data = append(b.data, f.Data[:whole]...)
		return nil
	}

	b.data = append(b.data, b.convert(f)...)
	return nil
}

// convert re-encodes one frame into the buffer's format.
func (b *Buffer) convert(f Frame) []byte {
	n := f.Samples()

	// Decode, rescaling sample values to the buffer's bit depth.
	shift := 8 * (b.sampleWidth - f.SampleWidth)
	raw := make([]int32, n*f.Channels)
	for i := range raw {
		v := decodeSample(f.Data[i*f.SampleWidth:], f.SampleWidth)
		if shift > 0 {
			v <<= uint(shift)
		} else if shift < 0 {
			v >>= uint(-shift)
		}
		raw[i] = v
	}

	// Channel mixdown (or duplication of the mono mix).
	if f.Channels != b.channels {
		mixed := make([]int32, n*b.channels)
		for i := 0; i < n; i++ {
			var sum int64
			for c := 0; c < f.Channels; c++ {
				sum += int64(raw[i*f.Channels+c])
			}
			mono := int32(sum / int64(f.Channels))
			for c := 0; c < b.channels; c++ {
				mixed[i*b.channels+c] = mono
			}
		}
		raw = mixed
	}

	// Nearest-sample rate conversion.
	if f.SampleRate != b.sampleRate {
		out := n * b.sampleRate / f.SampleRate
		res := make([]int32, out*b.channels)
		for i := 0; i < out; i++ {
			src := i * f.SampleRate / b.sampleRate
			copy(res[i*b.channels:(i+1)*b.channels], raw[src*b.channels:(src+1)*b.channels])
		}
		raw = res
	}

	enc := make([]byte, len(raw)*b.sampleWidth)
	for i, v := range raw {
		encodeSample(enc[i*b.sampleWidth:], v, b.sampleWidth)
	}
	return enc
}

// Len returns the number of accumulated PCM bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Samples returns the number of accumulated sample points per channel.
func (b *Buffer) Samples() int {
	if b.channels == 0 {
		return 0
	}
	return len(b.data) / (b.channels * b.sampleWidth)
}

// Duration returns the playback duration of the accumulated audio.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate == 0 {
		return 0
	}
	return time.Duration(b.Samples()) * time.Second / time.Duration(b.sampleRate)
}

// Reset drops the accumulated samples but keeps the stream format.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

func decodeSample(p []byte, width int) int32 {
	switch width {
	case 1:
		// 8-bit PCM is unsigned
		return int32(p[0]) - 128
	case 2:
		return int32(int16(binary.LittleEndian.Uint16(p)))
	case 3:
		v := int32(p[0]) | int32(p[1])<<8 | int32(p[2])<<16
		if v&0x800000 != 0 {
			v -= 1 << 24
		}
		return v
	default:
		return int32(binary.LittleEndian.Uint32(p))
	}
}

func encodeSample(p []byte, v int32, width int) {
	switch width {
	case 1:
		p[0] = byte(clamp(v, -128, 127) + 128)
	case 2:
		binary.LittleEndian.PutUint16(p, uint16(int16(clamp(v, -1<<15, 1<<15-1))))
	case 3:
		v = clamp(v, -1<<23, 1<<23-1)
		p[0] = byte(v)
		p[1] = byte(v >> 8)
		p[2] = byte(v >> 16)
	default:
		binary.LittleEndian.PutUint32(p, uint32(v))
	}
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
