package llm

import "context"

// Message is one turn of a chat prompt.
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// Request is a single non-streaming completion call.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Provider produces one completion per call. Implementations hold only
// fixed configuration and must be safe for concurrent use.
type Provider interface {
	Complete(ctx context.Context, req Request) (text string, err error)
	Close() error
}
