package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// YarnGPT calls the YarnGPT hosted TTS API, which serves Nigerian-accented
// voices and streams back an mp3 body.
type YarnGPT struct {
	apiURL string
	apiKey string
	hc     *http.Client
}

func NewYarnGPT(apiURL, apiKey string) *YarnGPT {
	return &YarnGPT{
		apiURL: apiURL,
		apiKey: apiKey,
		hc:     &http.Client{Timeout: 120 * time.Second},
	}
}

func (y *YarnGPT) Close() error { return nil }

type yarnRequest struct {
	Text           string `json:"text"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

func (y *YarnGPT) Synthesize(ctx context.Context, text, voice string) ([]byte, string, error) {
	if y.apiKey == "" {
		return nil, "", errors.New("yarngpt: api key is not configured")
	}
	if len(text) > MaxInputChars {
		text = text[:MaxInputChars]
	}

	body, err := json.Marshal(yarnRequest{Text: text, Voice: voice, ResponseFormat: "mp3"})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, y.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	auth := y.apiKey
	if !strings.HasPrefix(auth, "Bearer ") {
		auth = "Bearer " + auth
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := y.hc.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, "", fmt.Errorf("yarngpt: unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	const maxAudio = 20 << 20
	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudio))
	if err != nil {
		return nil, "", err
	}
	if len(audio) == 0 {
		return nil, "", errors.New("yarngpt: empty audio response")
	}
	return audio, "audio/mpeg", nil
}
