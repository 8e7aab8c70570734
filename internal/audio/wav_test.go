package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

func TestWriteWAVRoundTrip(t *testing.T) {
	samples := []int16{0, 1000, -1000, 32767, -32768, 42}
	path := filepath.Join(t.TempDir(), "clip.wav")

	require.NoError(t, WriteWAV(path, samples))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	require.EqualValues(t, SampleRate, dec.SampleRate)
	require.EqualValues(t, BitDepth, dec.BitDepth)
	require.EqualValues(t, Channels, dec.NumChans)
	require.Len(t, buf.Data, len(samples))
	for i, s := range samples {
		require.EqualValues(t, s, buf.Data[i], "sample %d", i)
	}
}

func TestWriteWAVPayloadSize(t *testing.T) {
	// 1 second of audio must carry exactly 48000 bytes of PCM payload.
	samples := make([]int16, SampleRate)
	path := filepath.Join(t.TempDir(), "one-second.wav")
	if err := WriteWAV(path, samples); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	const header = 44 // canonical RIFF/fmt/data header
	if got := info.Size() - header; got != BytesPerSecond {
		t.Errorf("payload size = %d, want %d", got, BytesPerSecond)
	}
}

func TestWriteWAVRejectsEmptyClip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	if err := WriteWAV(path, nil); err == nil {
		t.Fatal("expected error for empty sample buffer")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should exist after a rejected write")
	}
}

func TestWriteWAVDeterministic(t *testing.T) {
	samples := make([]int16, 2400)
	for i := range samples {
		samples[i] = int16(i % 311)
	}
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.wav")
	p2 := filepath.Join(dir, "b.wav")
	if err := WriteWAV(p1, samples); err != nil {
		t.Fatal(err)
	}
	if err := WriteWAV(p2, samples); err != nil {
		t.Fatal(err)
	}
	b1, err := os.ReadFile(p1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(p2)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, b1, b2, "two writes of the same samples must be byte-identical")
}

func TestDurationMS(t *testing.T) {
	cases := []struct {
		samples int
		want    int
	}{
		{0, 0},
		{SampleRate, 1000},          // exactly 1 s
		{SampleRate / 2, 500},       // 0.5 s
		{12, 1},                     // 0.5 ms rounds up
		{11, 0},                     // 0.458 ms rounds down
		{SampleRate*3 + 2400, 3100}, // 3.1 s
	}
	for _, c := range cases {
		if got := DurationMS(c.samples); got != c.want {
			t.Errorf("DurationMS(%d) = %d, want %d", c.samples, got, c.want)
		}
	}
}
