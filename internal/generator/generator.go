// Package generator runs the narration batch: every table entry is
// synthesized, written, and measured before the next one starts.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/audio"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/script"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/timing"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/tts"
)

// Summary reports what a run produced.
type Summary struct {
	// Written counts clips persisted to the output directory.
	Written int
	// Skipped counts entries the synthesizer produced no audio for.
	Skipped int
	// TotalSeconds is the unrounded narration length, accumulated in table order.
	TotalSeconds float64
	// RecordPath is where durations.json was written.
	RecordPath string
}

// Run renders every narration entry in table order. Any synthesis or I/O
// failure aborts the run; an entry whose synthesis yields zero chunks is
// skipped with a warning and gets no clip and no duration key. The duration
// record is persisted exactly once, after the last entry.
func Run(ctx context.Context, cfg *config.Config, table script.Table, provider tts.Provider, logger *zap.SugaredLogger) (*Summary, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	opts := tts.Options{
		Voice:    cfg.Voice,
		LangCode: cfg.LangCode,
		Speed:    cfg.Speed,
	}

	record := timing.NewRecord()
	summary := &Summary{}

	for _, entry := range table {
		outPath := filepath.Join(cfg.OutputDir, entry.Filename)
		fmt.Printf("  Generating %s: %q\n", entry.Filename, entry.Text)

		stream, err := provider.Synthesize(ctx, entry.Text, opts)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", entry.Filename, err)
		}
		samples, err := audio.Concat(stream)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", entry.Filename, err)
		}

		if len(samples) == 0 {
			// No audio for this line. The line is left out of the video
			// timing record entirely rather than producing an empty clip.
			summary.Skipped++
			logger.Warnw("synthesizer produced no audio, skipping entry",
				"filename", entry.Filename)
			continue
		}

		if err := audio.WriteWAV(outPath, samples); err != nil {
			return nil, err
		}

		dur := audio.DurationSeconds(len(samples))
		record.Set(entry.Filename, audio.DurationMS(len(samples)))
		summary.TotalSeconds += dur
		summary.Written++
		fmt.Printf("    → %s (%.1fs)\n", entry.Filename, dur)
	}

	recordPath := filepath.Join(cfg.OutputDir, timing.RecordFile)
	if err := record.Save(recordPath); err != nil {
		return nil, err
	}
	summary.RecordPath = recordPath

	fmt.Printf("\nDurations saved: %s\n", recordPath)
	fmt.Printf("Total narration: %.1fs\n", summary.TotalSeconds)
	fmt.Println("Audio generation complete.")

	logger.Infow("narration run finished",
		"written", summary.Written,
		"skipped", summary.Skipped,
		"total_seconds", summary.TotalSeconds)

	return summary, nil
}
