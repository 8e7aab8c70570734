package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/audio"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
)

// OpenAIProvider uses the OpenAI speech endpoint. With response_format "pcm"
// the API returns 24 kHz 16-bit mono samples, the clip format exactly.
type OpenAIProvider struct {
	Config *config.Config
}

func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	return &OpenAIProvider{Config: cfg}
}

func (p *OpenAIProvider) Synthesize(ctx context.Context, text string, opts Options) (audio.ChunkStream, error) {
	apiKey := p.Config.OpenAIAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API Key not configured")
	}

	baseURL := p.Config.OpenAIBaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	url := fmt.Sprintf("%s/audio/speech", baseURL)

	voice := opts.Voice
	if voice == "" {
		voice = "alloy"
	}

	// OpenAI supports speed 0.25 to 4.0. Default 1.0.
	speed := opts.Speed
	if speed == 0 {
		speed = 1.0
	}

	reqBody := map[string]interface{}{
		"model":           "tts-1",
		"input":           text,
		"voice":           voice,
		"speed":           speed,
		"response_format": "pcm",
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("OpenAI API failed with status %d: %s", resp.StatusCode, string(body))
	}

	return newPCMBodyStream(resp.Body), nil
}
