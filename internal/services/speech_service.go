package services

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Yuguda999/SautiNa/internal/language"
	"github.com/Yuguda999/SautiNa/internal/providers/stt"
	"github.com/Yuguda999/SautiNa/internal/providers/tts"
	"github.com/Yuguda999/SautiNa/internal/storage"
	"github.com/Yuguda999/SautiNa/internal/utils"
)

// SpeechService wraps the transcription and synthesis providers with the
// mappings the pipeline needs: detected language codes folded into the
// supported set, and synthesized audio stored under a unique name.
type SpeechService interface {
	TranscribeAudio(ctx context.Context, audio []byte, filename string) (text string, detected language.Language, err error)
	// Synthesize renders audio without storing it (the /text-to-speech
	// endpoint streams it straight back).
	Synthesize(ctx context.Context, text string, lang language.Language) (audio []byte, contentType string, err error)
	SynthesizeReply(ctx context.Context, text string, lang language.Language) (audioURL string, err error)
}

type speechService struct {
	stt   stt.Provider
	tts   tts.Provider
	store storage.Uploader
	log   *logrus.Logger
}

func NewSpeechService(sttProvider stt.Provider, ttsProvider tts.Provider, store storage.Uploader, log *logrus.Logger) SpeechService {
	return &speechService{stt: sttProvider, tts: ttsProvider, store: store, log: log}
}

func (s *speechService) TranscribeAudio(ctx context.Context, audio []byte, filename string) (string, language.Language, error) {
	const op = "SpeechService.TranscribeAudio"

	if len(audio) == 0 {
		return "", language.Default, utils.E(utils.CodeInvalidArgument, op, "audio is empty", nil)
	}

	text, detected, err := s.stt.Transcribe(ctx, audio, filename)
	if err != nil {
		return "", language.Default, utils.E(utils.CodeUnavailable, op, "transcription failed", err)
	}

	lang := language.FromDetection(detected)
	s.log.WithFields(logrus.Fields{
		"detected": detected,
		"language": lang,
		"text":     head(text, 100),
	}).Info("audio transcribed")

	return text, lang, nil
}

func (s *speechService) Synthesize(ctx context.Context, text string, lang language.Language) ([]byte, string, error) {
	const op = "SpeechService.Synthesize"

	audio, contentType, err := s.tts.Synthesize(ctx, text, language.Voice(lang))
	if err != nil {
		return nil, "", utils.E(utils.CodeUnavailable, op, "speech synthesis failed", err)
	}
	return audio, contentType, nil
}

func (s *speechService) SynthesizeReply(ctx context.Context, text string, lang language.Language) (string, error) {
	const op = "SpeechService.SynthesizeReply"

	audio, contentType, err := s.Synthesize(ctx, text, lang)
	if err != nil {
		return "", err
	}

	name := "response_" + uuid.NewString()[:8] + ".mp3"
	url, err := s.store.Upload(ctx, name, contentType, bytes.NewReader(audio))
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store audio artifact", err)
	}

	s.log.WithFields(logrus.Fields{
		"object":   name,
		"language": lang,
		"bytes":    len(audio),
	}).Info("reply audio stored")

	return url, nil
}
