package intent

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Yuguda999/SautiNa/internal/providers/llm"
)

const classificationPrompt = `You are an intent classifier for a Nigerian AI assistant. Analyze the user's message and classify it into exactly ONE of these intents.
IMPORTANT: You must handle input in English, Nigerian Pidgin, Hausa, Yoruba, and Igbo.

SEARCH - User needs current/real-time information:
  - Weather (e.g., "weather", "oju ojo", "yanayi", "ihu igwe")
  - Prices (e.g., "price", "owo", "nawa ne", "ego ole")
  - News/Events (e.g., "news", "iroyin", "labarai", "ozi")
  - "Today", "now", "current" queries

TRANSLATE - User wants to translate text:
  - Explicitly asks to translate
  - "How do you say X in Y"
  - "Tumọ", "Fassara", "Kowaa"

LEARN - User wants to learn or be taught:
  - "Teach me", "Explain", "Kọ mi", "Koya min"
  - Educational content (health, farming, tech)
  - "How to", "Yadda ake", "Bawo ni a se"

CHAT - General conversation:
  - Greetings ("Bawo", "Sannu", "Kedu", "How far")
  - Small talk, personal questions
  - Jokes, stories

Respond with ONLY the intent word in lowercase: search, translate, learn, or chat`

// Classifier resolves an Intent for each message: a keyword pass first, and
// a model call only when the keywords are unsure. It never returns an error;
// any failure on the model path resolves to Chat.
type Classifier struct {
	llm llm.Provider
	log *logrus.Logger
}

func NewClassifier(provider llm.Provider, log *logrus.Logger) *Classifier {
	return &Classifier{llm: provider, log: log}
}

func (c *Classifier) Classify(ctx context.Context, message string) Intent {
	if it, ok := QuickClassify(message); ok {
		return it
	}

	out, err := c.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: classificationPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   10,
		Temperature: 0.1,
	})
	if err != nil {
		c.log.WithError(err).WithField("message", head(message, 50)).
			Warn("intent model pass failed, defaulting to chat")
		return Chat
	}

	switch Intent(strings.ToLower(strings.TrimSpace(out))) {
	case Search:
		return Search
	case Translate:
		return Translate
	case Learn:
		return Learn
	default:
		return Chat
	}
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
