package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/audio"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/script"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/timing"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/tts"
)

// stubProvider returns canned chunk sets keyed by narration text. Missing
// texts synthesize to nothing, mimicking a model that yields zero chunks.
type stubProvider struct {
	chunks map[string][][]int16
	err    error
}

func (s *stubProvider) Synthesize(_ context.Context, text string, _ tts.Options) (audio.ChunkStream, error) {
	if s.err != nil {
		return nil, s.err
	}
	return audio.NewBufferStream(s.chunks[text]...), nil
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Defaults()
	cfg.OutputDir = filepath.Join(t.TempDir(), "output", "audio")
	return cfg
}

func oneSecond() []int16 {
	return make([]int16, audio.SampleRate)
}

func TestRunOneSecondClip(t *testing.T) {
	cfg := testConfig(t)
	table := script.Table{{Filename: "01.wav", Text: "Hi"}}
	provider := &stubProvider{chunks: map[string][][]int16{
		"Hi": {oneSecond()},
	}}

	summary, err := Run(context.Background(), cfg, table, provider, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.Equal(t, 1, summary.Written)
	require.Equal(t, 0, summary.Skipped)
	require.InDelta(t, 1.0, summary.TotalSeconds, 1e-9)

	// Exactly 48000 bytes of PCM payload plus the fixed 44-byte header.
	info, err := os.Stat(filepath.Join(cfg.OutputDir, "01.wav"))
	require.NoError(t, err)
	require.EqualValues(t, audio.BytesPerSecond+44, info.Size())

	record, err := timing.Load(summary.RecordPath)
	require.NoError(t, err)
	require.Equal(t, []string{"01.wav"}, record.Filenames())
	ms, ok := record.Get("01.wav")
	require.True(t, ok)
	require.Equal(t, 1000, ms)
}

func TestRunSkipsEmptySynthesis(t *testing.T) {
	cfg := testConfig(t)
	table := script.Table{
		{Filename: "01.wav", Text: "speak"},
		{Filename: "02.wav", Text: "muted"},
		{Filename: "03.wav", Text: "again"},
	}
	provider := &stubProvider{chunks: map[string][][]int16{
		"speak": {oneSecond()},
		// "muted" yields no chunks
		"again": {make([]int16, audio.SampleRate/2)},
	}}

	summary, err := Run(context.Background(), cfg, table, provider, zap.NewNop().Sugar())
	require.NoError(t, err, "empty synthesis must not fail the run")
	require.Equal(t, 2, summary.Written)
	require.Equal(t, 1, summary.Skipped)

	_, err = os.Stat(filepath.Join(cfg.OutputDir, "02.wav"))
	require.True(t, os.IsNotExist(err), "skipped entry must produce no file")

	record, err := timing.Load(summary.RecordPath)
	require.NoError(t, err)
	require.Equal(t, []string{"01.wav", "03.wav"}, record.Filenames())
	_, ok := record.Get("02.wav")
	require.False(t, ok, "skipped entry must have no duration key")
}

func TestRunRecordOrderMatchesTable(t *testing.T) {
	cfg := testConfig(t)
	table := script.Table{
		{Filename: "01.wav", Text: "one"},
		{Filename: "02.wav", Text: "two"},
		{Filename: "03.wav", Text: "three"},
		{Filename: "04.wav", Text: "four"},
	}
	chunks := map[string][][]int16{}
	for _, e := range table {
		chunks[e.Text] = [][]int16{make([]int16, 2400)}
	}
	provider := &stubProvider{chunks: chunks}

	summary, err := Run(context.Background(), cfg, table, provider, zap.NewNop().Sugar())
	require.NoError(t, err)

	record, err := timing.Load(summary.RecordPath)
	require.NoError(t, err)
	require.Equal(t, []string{"01.wav", "02.wav", "03.wav", "04.wav"}, record.Filenames())
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	table := script.Table{
		{Filename: "01.wav", Text: "alpha"},
		{Filename: "02.wav", Text: "beta"},
	}
	mk := func() *stubProvider {
		samples := make([]int16, 7200)
		for i := range samples {
			samples[i] = int16(i % 251)
		}
		return &stubProvider{chunks: map[string][][]int16{
			"alpha": {samples[:2400], samples[2400:]},
			"beta":  {samples},
		}}
	}

	_, err := Run(context.Background(), cfg, table, mk(), zap.NewNop().Sugar())
	require.NoError(t, err)
	first := snapshotDir(t, cfg.OutputDir)

	_, err = Run(context.Background(), cfg, table, mk(), zap.NewNop().Sugar())
	require.NoError(t, err)
	second := snapshotDir(t, cfg.OutputDir)

	require.Equal(t, first, second, "rerun must overwrite with byte-identical output")
}

func snapshotDir(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	out := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		out[e.Name()] = data
	}
	return out
}

func TestRunTotalAccumulatesInTableOrder(t *testing.T) {
	cfg := testConfig(t)
	table := script.Table{
		{Filename: "01.wav", Text: "a"},
		{Filename: "02.wav", Text: "b"},
	}
	provider := &stubProvider{chunks: map[string][][]int16{
		"a": {make([]int16, audio.SampleRate)},   // 1.0 s
		"b": {make([]int16, audio.SampleRate/4)}, // 0.25 s
	}}

	summary, err := Run(context.Background(), cfg, table, provider, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.InDelta(t, 1.25, summary.TotalSeconds, 1e-9)
}

func TestRunAbortsOnSynthesisFailure(t *testing.T) {
	cfg := testConfig(t)
	table := script.Table{{Filename: "01.wav", Text: "boom"}}
	provider := &stubProvider{err: errors.New("model failure")}

	_, err := Run(context.Background(), cfg, table, provider, zap.NewNop().Sugar())
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(cfg.OutputDir, timing.RecordFile))
	require.True(t, os.IsNotExist(statErr), "aborted run must not write durations.json")
}

func TestRunRejectsInvalidTable(t *testing.T) {
	cfg := testConfig(t)
	table := script.Table{{Filename: "bad-name.wav", Text: "x"}}
	provider := &stubProvider{}

	_, err := Run(context.Background(), cfg, table, provider, zap.NewNop().Sugar())
	require.Error(t, err)
}

func TestRunCreatesOutputDir(t *testing.T) {
	cfg := testConfig(t)
	require.NoDirExists(t, cfg.OutputDir)

	table := script.Table{{Filename: "01.wav", Text: "hello"}}
	provider := &stubProvider{chunks: map[string][][]int16{
		"hello": {make([]int16, 1200)},
	}}
	_, err := Run(context.Background(), cfg, table, provider, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.DirExists(t, cfg.OutputDir)
}
