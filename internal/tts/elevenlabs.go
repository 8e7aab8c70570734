package tts

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/gorilla/websocket"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/audio"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
)

// ElevenLabsProvider streams synthesis over the ElevenLabs websocket
// stream-input API. Requesting pcm_24000 keeps the chunks in the clip format
// with no transcoding.
type ElevenLabsProvider struct {
	Config *config.Config
}

func NewElevenLabsProvider(cfg *config.Config) *ElevenLabsProvider {
	return &ElevenLabsProvider{Config: cfg}
}

func (p *ElevenLabsProvider) Synthesize(ctx context.Context, text string, opts Options) (audio.ChunkStream, error) {
	apiKey := p.Config.ElevenLabsAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("ElevenLabs API Key not configured")
	}

	voice := opts.Voice
	if voice == "" {
		voice = "21m00Tcm4TlvDq8ikWAM" // Rachel
	}

	speed := opts.Speed
	if speed == 0 {
		speed = 1.0
	}

	url := fmt.Sprintf(
		"wss://api.elevenlabs.io/v1/text-to-speech/%s/stream-input?model_id=eleven_multilingual_v2&output_format=pcm_24000",
		voice,
	)

	d := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}
	conn, _, err := d.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing elevenlabs: %v", err)
	}

	// Handshake frame carries the key and voice settings; the empty-text
	// frame afterwards tells the server the input is complete.
	init := map[string]interface{}{
		"text": " ",
		"voice_settings": map[string]interface{}{
			"stability":        0.5,
			"similarity_boost": 0.8,
			"speed":            speed,
		},
		"xi_api_key": apiKey,
	}
	if err := conn.WriteJSON(init); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sending init: %v", err)
	}
	if err := conn.WriteJSON(map[string]interface{}{"text": text + " ", "try_trigger_generation": true}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sending text: %v", err)
	}
	if err := conn.WriteJSON(map[string]interface{}{"text": ""}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("closing input: %v", err)
	}

	return &elevenLabsStream{conn: conn}, nil
}

type elevenLabsStream struct {
	conn *websocket.Conn
	done bool
}

type elevenLabsFrame struct {
	Audio   string  `json:"audio"`
	IsFinal *bool   `json:"isFinal"`
	Error   string  `json:"error"`
	Message *string `json:"message"`
}

func (s *elevenLabsStream) Next() ([]int16, error) {
	for {
		if s.done {
			return nil, io.EOF
		}

		var frame elevenLabsFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			s.done = true
			s.conn.Close()
			// A normal closure after the final frame ends the stream.
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("read message: %v", err)
		}

		if frame.Error != "" {
			s.done = true
			s.conn.Close()
			msg := frame.Error
			if frame.Message != nil {
				msg = *frame.Message
			}
			return nil, fmt.Errorf("elevenlabs api error: %s", msg)
		}

		if frame.IsFinal != nil && *frame.IsFinal {
			s.done = true
			s.conn.Close()
		}

		if frame.Audio == "" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(frame.Audio)
		if err != nil {
			s.done = true
			s.conn.Close()
			return nil, err
		}
		samples := audio.DecodePCM16(decoded)
		if len(samples) == 0 {
			continue
		}
		return samples, nil
	}
}
