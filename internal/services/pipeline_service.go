package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Yuguda999/SautiNa/internal/intent"
	"github.com/Yuguda999/SautiNa/internal/language"
	"github.com/Yuguda999/SautiNa/internal/providers/llm"
)

// TextResult is the outcome of one text-in orchestration. AudioURL empty
// means synthesis was skipped or failed; that is a valid terminal state,
// not an error.
type TextResult struct {
	ReplyText string
	Language  language.Language
	AudioURL  string
	Intent    intent.Intent
}

// VoiceResult is the outcome of one voice-in orchestration.
type VoiceResult struct {
	TranscribedText string
	ReplyText       string
	Language        language.Language
	AudioURL        string
	Intent          intent.Intent
}

// PipelineService sequences transcription, intent classification, search
// augmentation, reply generation, and synthesis into one transaction per
// request. Only transcription failure aborts a request; every other stage
// degrades the result instead of failing it.
type PipelineService interface {
	ProcessText(ctx context.Context, text string, lang language.Language, mode language.Mode, history []llm.Message) TextResult
	ProcessVoice(ctx context.Context, audio []byte, filename string, preferred language.Language, mode language.Mode, history []llm.Message) (VoiceResult, error)
}

type pipelineService struct {
	speech    SpeechService
	assistant AssistantService
	log       *logrus.Logger
}

func NewPipelineService(speech SpeechService, assistant AssistantService, log *logrus.Logger) PipelineService {
	return &pipelineService{speech: speech, assistant: assistant, log: log}
}

// ProcessText handles text-in/text-out. Language is the caller's choice or
// English; it is never inferred from text.
func (p *pipelineService) ProcessText(ctx context.Context, text string, lang language.Language, mode language.Mode, history []llm.Message) TextResult {
	if lang == "" {
		lang = language.Default
	}

	p.log.WithFields(logrus.Fields{
		"mode":     mode,
		"language": lang,
	}).Info("text pipeline start")

	reply, it := p.assistant.GenerateReply(ctx, text, lang, mode, history)

	return TextResult{
		ReplyText: reply,
		Language:  lang,
		AudioURL:  p.synthesize(ctx, reply, lang),
		Intent:    it,
	}
}

// ProcessVoice handles voice-in/voice-out. Transcription failure is the
// pipeline's sole hard failure; without text there is nothing to respond to.
func (p *pipelineService) ProcessVoice(ctx context.Context, audio []byte, filename string, preferred language.Language, mode language.Mode, history []llm.Message) (VoiceResult, error) {
	p.log.WithFields(logrus.Fields{
		"mode":     mode,
		"filename": filename,
	}).Info("voice pipeline start")

	text, detected, err := p.speech.TranscribeAudio(ctx, audio, filename)
	if err != nil {
		return VoiceResult{}, err
	}

	lang := preferred
	if lang == "" {
		lang = detected
	}

	reply, it := p.assistant.GenerateReply(ctx, text, lang, mode, history)

	return VoiceResult{
		TranscribedText: text,
		ReplyText:       reply,
		Language:        lang,
		AudioURL:        p.synthesize(ctx, reply, lang),
		Intent:          it,
	}, nil
}

// synthesize is the best-effort tail of both flows: a failure is logged and
// yields an absent audio URL, never a failed request.
func (p *pipelineService) synthesize(ctx context.Context, reply string, lang language.Language) string {
	url, err := p.speech.SynthesizeReply(ctx, reply, lang)
	if err != nil {
		p.log.WithError(err).WithField("language", lang).
			Warn("synthesis failed, returning reply without audio")
		return ""
	}
	return url
}
