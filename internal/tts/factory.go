package tts

import (
	"errors"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
)

type EngineType string

const (
	EngineKokoro     EngineType = "kokoro"
	EngineOpenAI     EngineType = "openai"
	EngineElevenLabs EngineType = "elevenlabs"
)

// NewProvider returns a Provider based on the engine type.
func NewProvider(engine EngineType, cfg *config.Config) (Provider, error) {
	switch engine {
	case EngineKokoro:
		return NewKokoroProvider(cfg), nil
	case EngineOpenAI:
		return NewOpenAIProvider(cfg), nil
	case EngineElevenLabs:
		return NewElevenLabsProvider(cfg), nil
	default:
		return nil, errors.New("unsupported TTS engine")
	}
}
