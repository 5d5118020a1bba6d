package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Yuguda999/SautiNa/internal/intent"
	"github.com/Yuguda999/SautiNa/internal/language"
	"github.com/Yuguda999/SautiNa/internal/providers/llm"
	"github.com/Yuguda999/SautiNa/internal/utils"
)

// IntentClassifier resolves the advisory intent of one message. It never
// errors; failures resolve to chat.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) intent.Intent
}

// Searcher is the best-effort web lookup. Empty string means no results or
// unavailable; it never errors.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) string
}

// AssistantService produces the assistant's reply text. GenerateReply never
// fails: when the model backend is unreachable the caller gets the
// registry's localized apology instead of an error. Translate is a separate
// single-purpose operation invoked by its own endpoint; it shares the model
// client but none of the orchestration state.
type AssistantService interface {
	GenerateReply(ctx context.Context, userMessage string, lang language.Language, mode language.Mode, history []llm.Message) (reply string, it intent.Intent)
	Translate(ctx context.Context, text string, src, dst language.Language) (string, error)
}

type assistantService struct {
	llm        llm.Provider
	classifier IntentClassifier
	search     Searcher
	maxResults int
	log        *logrus.Logger
}

func NewAssistantService(provider llm.Provider, classifier IntentClassifier, search Searcher, maxResults int, log *logrus.Logger) AssistantService {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &assistantService{
		llm:        provider,
		classifier: classifier,
		search:     search,
		maxResults: maxResults,
		log:        log,
	}
}

func (s *assistantService) GenerateReply(ctx context.Context, userMessage string, lang language.Language, mode language.Mode, history []llm.Message) (string, intent.Intent) {
	const op = "AssistantService.GenerateReply"

	// Teacher mode is deliberately isolated from real-time augmentation:
	// intent is forced and search never runs.
	var it intent.Intent
	if mode == language.ModeLearn {
		it = intent.Learn
	} else {
		it = s.classifier.Classify(ctx, userMessage)
	}

	searchContext := ""
	if mode == language.ModeChat && it == intent.Search {
		if results := s.search.Search(ctx, userMessage, s.maxResults); results != "" {
			searchContext = "\n\nCONTEXT FROM WEB SEARCH:\n" + results +
				"\nUse this information to answer the user's question if relevant."
		}
	}

	systemPrompt := language.ChatPrompt(lang)
	if mode == language.ModeLearn {
		systemPrompt = language.TeacherPrompt(lang)
	}
	enforcement := fmt.Sprintf(
		"\n\nIMPORTANT: You MUST respond in %s (%s). Do not switch languages unless explicitly asked.",
		language.DisplayName(lang), lang,
	)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt + enforcement + searchContext})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})

	reply, err := s.llm.Complete(ctx, llm.Request{
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		s.log.WithError(err).WithFields(logrus.Fields{
			"op":       op,
			"language": lang,
			"mode":     mode,
			"message":  head(userMessage, 100),
		}).Error("reply generation failed, using localized fallback")
		// Intent reported as chat so a backend outage is not mistaken for a
		// classified request downstream.
		return language.Fallback(lang), intent.Chat
	}
	return reply, it
}

const translatePromptFmt = `You are a professional translator specializing in Nigerian languages.
Your task is to translate text accurately from %s to %s.
Preserve the meaning, tone, and cultural context of the original text.
Only output the translated text, nothing else. Do not add explanations or notes.`

func (s *assistantService) Translate(ctx context.Context, text string, src, dst language.Language) (string, error) {
	const op = "AssistantService.Translate"

	if strings.TrimSpace(text) == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "text is required", nil)
	}

	srcName := language.DisplayName(src)
	dstName := language.DisplayName(dst)

	out, err := s.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: fmt.Sprintf(translatePromptFmt, srcName, dstName)},
			{Role: "user", Content: fmt.Sprintf("Translate this from %s to %s:\n\n%s", srcName, dstName, text)},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "translation failed", err)
	}
	return strings.TrimSpace(out), nil
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
