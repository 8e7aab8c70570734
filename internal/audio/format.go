package audio

// Narration clips are written in a single fixed format. The duration
// bookkeeping in internal/timing depends on these values, so they are not
// runtime-configurable.
const (
	// SampleRate is the clip sample rate in Hz.
	SampleRate = 24000
	// Channels is the number of audio channels (1 = mono).
	Channels = 1
	// BitDepth is the bit depth per sample.
	BitDepth = 16
	// BytesPerSample is the number of bytes per sample.
	BytesPerSample = BitDepth / 8
	// BytesPerSecond is the PCM payload rate (48000 bytes/s for 24 kHz 16-bit mono).
	BytesPerSecond = SampleRate * BytesPerSample
)
