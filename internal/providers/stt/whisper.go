package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// Whisper posts audio to a Whisper server exposing the OpenAI-style
// /audio/transcriptions endpoint. Language is never forced; the model
// auto-detects and reports what it heard.
type Whisper struct {
	baseURL string
	model   string
	apiKey  string
	hc      *http.Client
}

func NewWhisper(baseURL, model, apiKey string) *Whisper {
	return &Whisper{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: 120 * time.Second},
	}
}

func (w *Whisper) Close() error { return nil }

type whisperResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (w *Whisper) Transcribe(ctx context.Context, audio []byte, filename string) (string, string, error) {
	if filename == "" || filepath.Ext(filename) == "" {
		filename = "audio.wav"
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return "", "", err
	}
	if err := mw.WriteField("model", w.model); err != nil {
		return "", "", err
	}
	if err := mw.WriteField("response_format", "verbose_json"); err != nil {
		return "", "", err
	}
	if err := mw.Close(); err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if w.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+w.apiKey)
	}

	resp, err := w.hc.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("whisper: unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var out whisperResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", "", fmt.Errorf("whisper: decode response: %w", err)
	}
	return strings.TrimSpace(out.Text), out.Language, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
