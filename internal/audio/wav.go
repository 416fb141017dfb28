package audio

import "encoding/binary"

// Fallback format for a WAV produced from a buffer that never
// received a frame: 16 kHz mono 16-bit, matching the capture default.
const (
	defaultSampleRate  = 16000
	defaultChannels    = 1
	defaultSampleWidth = 2
)

// WAV encodes the buffer's current contents as a complete RIFF/WAVE
// file (PCM, no compression).
func (b *Buffer) WAV() []byte {
	sr, ch, w := b.sampleRate, b.channels, b.sampleWidth
	if sr == 0 {
		sr, ch, w = defaultSampleRate, defaultChannels, defaultSampleWidth
	}

	data := b.data
	out := make([]byte, 44+len(data))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(data)))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(ch))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sr))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sr*ch*w)) // byte rate
	binary.LittleEndian.PutUint16(out[32:34], uint16(ch*w))    // block align
	binary.LittleEndian.PutUint16(out[34:36], uint16(w*8))     // bits per sample

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(data)))
	copy(out[44:], data)

	return out
}

// Clip packages the buffer as a self-contained clip for transcription.
func (b *Buffer) Clip() Clip {
	sr, ch, w := b.sampleRate, b.channels, b.sampleWidth
	if sr == 0 {
		sr, ch, w = defaultSampleRate, defaultChannels, defaultSampleWidth
	}
	return Clip{
		Data:        b.WAV(),
		SampleRate:  sr,
		Channels:    ch,
		SampleWidth: w,
	}
}
