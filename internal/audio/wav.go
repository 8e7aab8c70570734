package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV persists samples as a 16-bit mono PCM WAV file at path.
// The caller is expected to skip the call entirely for empty clips; writing
// zero samples is rejected so an empty file can never sneak into the output
// directory.
func WriteWAV(path string, samples []int16) error {
	if len(samples) == 0 {
		return fmt.Errorf("write wav %s: no samples", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create clip: %w", err)
	}

	enc := wav.NewEncoder(f, SampleRate, BitDepth, Channels, 1) // 1 = PCM

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: Channels, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("encode clip: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize clip: %w", err)
	}
	return f.Close()
}

// Duration returns the playback time of a sample buffer.
func Duration(sampleCount int) time.Duration {
	return time.Duration(sampleCount) * time.Second / SampleRate
}

// DurationSeconds returns the unrounded playback time in seconds.
func DurationSeconds(sampleCount int) float64 {
	return float64(sampleCount) / SampleRate
}

// DurationMS returns the playback time in milliseconds, rounded to nearest.
// Derived from the sample count rather than the container file size so the
// WAV header never skews the record.
func DurationMS(sampleCount int) int {
	return int(math.Round(DurationSeconds(sampleCount) * 1000))
}
