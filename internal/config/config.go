package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries every knob of the narration pipeline in one value, so an
// alternate table or voice is a config change rather than a code edit.
type Config struct {
	// Engine selects the TTS backend: kokoro|openai|elevenlabs.
	Engine string `json:"engine" env:"DEMOVOICE_ENGINE"`
	// Voice is the synthesizer voice identifier.
	Voice string `json:"voice" env:"DEMOVOICE_VOICE"`
	// LangCode is the language/accent code ("a" = American English for Kokoro).
	LangCode string `json:"lang_code" env:"DEMOVOICE_LANG_CODE"`
	// Speed is the speech speed multiplier.
	Speed float64 `json:"speed" env:"DEMOVOICE_SPEED"`

	// OutputDir receives the clips and durations.json.
	OutputDir string `json:"output_dir" env:"DEMOVOICE_OUTPUT_DIR"`
	// ScriptPath optionally points at a JSON narration table; empty means
	// the built-in demo script.
	ScriptPath string `json:"script_path" env:"DEMOVOICE_SCRIPT"`

	// Kokoro (self-hosted Kokoro-FastAPI server)
	KokoroURL string `json:"kokoro_url" env:"KOKORO_URL"`

	// OpenAI
	OpenAIAPIKey  string `json:"openai_api_key" env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `json:"openai_base_url" env:"OPENAI_BASE_URL"` // Optional proxy

	// ElevenLabs
	ElevenLabsAPIKey string `json:"elevenlabs_api_key" env:"ELEVENLABS_API_KEY"`

	// Video assembly
	SlidesDir       string `json:"slides_dir" env:"DEMOVOICE_SLIDES_DIR"`
	EnableCaptions  bool   `json:"enable_captions" env:"DEMOVOICE_CAPTIONS"`
	CaptionFontSize int    `json:"caption_font_size" env:"DEMOVOICE_CAPTION_FONT_SIZE"`
}

// ConfigFile is looked up in the working directory.
const ConfigFile = "config.json"

// Defaults returns the configuration the original demo pipeline runs with.
func Defaults() *Config {
	return &Config{
		Engine:          "kokoro",
		Voice:           "am_puck",
		LangCode:        "a", // American English
		Speed:           1.0,
		OutputDir:       "output/audio",
		KokoroURL:       "http://localhost:8880",
		SlidesDir:       "output/slides",
		CaptionFontSize: 28,
	}
}

// Load builds the configuration: defaults, then config.json if present, then
// .env and environment variables.
func Load() (*Config, error) {
	cfg := Defaults()

	if file, err := os.ReadFile(ConfigFile); err == nil {
		if err := json.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
	}

	_ = godotenv.Load()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// Save writes the current configuration back to config.json.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigFile, data, 0644)
}
