package tts

import (
	"context"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/audio"
)

// Options are the per-request synthesis parameters shared by all providers.
type Options struct {
	// Voice identifier, e.g. "am_puck". Empty selects the provider default.
	Voice string
	// LangCode is the language/accent code ("a" = American English).
	LangCode string
	// Speed is the speech speed multiplier (1.0 = normal).
	Speed float64
}

// Provider defines the interface for Text-to-Speech synthesis.
type Provider interface {
	// Synthesize converts text to a finite stream of 16-bit mono sample
	// chunks at audio.SampleRate. The stream is single pass; a stream that
	// yields no chunks means the provider produced no audio for the text.
	Synthesize(ctx context.Context, text string, opts Options) (audio.ChunkStream, error)
}
