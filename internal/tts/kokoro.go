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

// KokoroProvider talks to a self-hosted Kokoro-FastAPI server, which exposes
// an OpenAI-compatible speech endpoint and can stream raw PCM at 24 kHz.
type KokoroProvider struct {
	Config *config.Config
}

func NewKokoroProvider(cfg *config.Config) *KokoroProvider {
	return &KokoroProvider{Config: cfg}
}

func (p *KokoroProvider) Synthesize(ctx context.Context, text string, opts Options) (audio.ChunkStream, error) {
	baseURL := p.Config.KokoroURL
	if baseURL == "" {
		baseURL = "http://localhost:8880"
	}
	url := fmt.Sprintf("%s/v1/audio/speech", baseURL)

	voice := opts.Voice
	if voice == "" {
		voice = "am_puck"
	}
	speed := opts.Speed
	if speed == 0 {
		speed = 1.0
	}

	reqBody := map[string]interface{}{
		"model":           "kokoro",
		"input":           text,
		"voice":           voice,
		"response_format": "pcm",
		"speed":           speed,
		"stream":          true,
	}
	if opts.LangCode != "" {
		reqBody["lang_code"] = opts.LangCode
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("kokoro server failed with status %d: %s", resp.StatusCode, string(body))
	}

	return newPCMBodyStream(resp.Body), nil
}
