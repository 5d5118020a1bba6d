package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuguda999/SautiNa/internal/intent"
	"github.com/Yuguda999/SautiNa/internal/language"
	"github.com/Yuguda999/SautiNa/internal/providers/llm"
	"github.com/Yuguda999/SautiNa/internal/services"
	"github.com/Yuguda999/SautiNa/internal/utils"
)

type fakePipeline struct {
	text     services.TextResult
	voice    services.VoiceResult
	voiceErr error

	lastLang language.Language
	lastMode language.Mode
}

func (f *fakePipeline) ProcessText(ctx context.Context, text string, lang language.Language, mode language.Mode, history []llm.Message) services.TextResult {
	f.lastLang = lang
	f.lastMode = mode
	return f.text
}

func (f *fakePipeline) ProcessVoice(ctx context.Context, audio []byte, filename string, preferred language.Language, mode language.Mode, history []llm.Message) (services.VoiceResult, error) {
	f.lastLang = preferred
	f.lastMode = mode
	return f.voice, f.voiceErr
}

type fakeSpeech struct{}

func (fakeSpeech) TranscribeAudio(ctx context.Context, audio []byte, filename string) (string, language.Language, error) {
	return "", language.Default, nil
}

func (fakeSpeech) Synthesize(ctx context.Context, text string, lang language.Language) ([]byte, string, error) {
	return []byte("mp3bytes"), "audio/mpeg", nil
}

func (fakeSpeech) SynthesizeReply(ctx context.Context, text string, lang language.Language) (string, error) {
	return "/audio/x.mp3", nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newTestRouter(p services.PipelineService) (*gin.Engine, *PipelineHandler) {
	gin.SetMode(gin.TestMode)
	h := NewPipelineHandler(p, fakeSpeech{}, quietLogger())
	r := gin.New()
	r.POST("/api/text", h.Text)
	r.POST("/api/voice", h.Voice)
	r.POST("/api/text-to-speech", h.TextToSpeech)
	return r, h
}

func TestTextEndpoint(t *testing.T) {
	p := &fakePipeline{text: services.TextResult{
		ReplyText: "Sannu!",
		Language:  language.Hausa,
		AudioURL:  "/audio/r.mp3",
		Intent:    intent.Chat,
	}}
	r, _ := newTestRouter(p)

	body := `{"text":"hello","language":"ha","mode":"chat"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sannu!", resp.Text)
	assert.Equal(t, "ha", resp.DetectedLanguage)
	assert.Equal(t, "/audio/r.mp3", resp.AudioURL)
	assert.Equal(t, language.Hausa, p.lastLang)
}

func TestTextEndpointInvalidLanguageIsNoPreference(t *testing.T) {
	p := &fakePipeline{text: services.TextResult{ReplyText: "ok", Language: language.English}}
	r, _ := newTestRouter(p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/text", strings.NewReader(`{"text":"hi","language":"zz"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, language.Language(""), p.lastLang)
}

func TestTextEndpointRequiresText(t *testing.T) {
	r, _ := newTestRouter(&fakePipeline{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/text", strings.NewReader(`{"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func voiceRequest(t *testing.T, lang string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio", "clip.wav")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-wav-bytes"))
	require.NoError(t, err)
	if lang != "" {
		require.NoError(t, mw.WriteField("language", lang))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/voice", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestVoiceEndpoint(t *testing.T) {
	p := &fakePipeline{voice: services.VoiceResult{
		TranscribedText: "ina kwana",
		ReplyText:       "lafiya lau",
		Language:        language.Hausa,
		AudioURL:        "/audio/r.mp3",
		Intent:          intent.Chat,
	}}
	r, _ := newTestRouter(p)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, voiceRequest(t, "ha"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp VoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ina kwana", resp.TranscribedText)
	assert.Equal(t, "lafiya lau", resp.ResponseText)
	assert.Equal(t, language.Hausa, p.lastLang)
}

func TestVoiceEndpointTranscriptionFailure(t *testing.T) {
	p := &fakePipeline{voiceErr: utils.E(utils.CodeUnavailable, "SpeechService.TranscribeAudio", "transcription failed", errors.New("model error"))}
	r, _ := newTestRouter(p)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, voiceRequest(t, ""))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, utils.CodeUnavailable, apiErr.Code)
}

func TestVoiceEndpointRequiresAudio(t *testing.T) {
	r, _ := newTestRouter(&fakePipeline{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/voice", strings.NewReader(""))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTextToSpeechEndpoint(t *testing.T) {
	r, _ := newTestRouter(&fakePipeline{})

	form := "text=sannu&language=ha"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/text-to-speech", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "mp3bytes", w.Body.String())
}
