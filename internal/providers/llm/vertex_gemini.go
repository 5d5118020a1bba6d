package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/iterator"
)

// VertexGemini is an alternate Provider for deployments that route through
// Vertex AI instead of a self-hosted N-ATLaS endpoint.
type VertexGemini struct {
	client *vertexgenai.Client
	name   string
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &VertexGemini{client: c, name: modelName}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Complete(ctx context.Context, req Request) (string, error) {
	m := v.client.GenerativeModel(v.name)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	m.SetTemperature(req.Temperature)

	// Gemini takes the system role separately; history and the user turn go
	// through a chat session so roles survive the conversion.
	var history []*vertexgenai.Content
	var last string
	flush := func() {
		if last != "" {
			history = append(history, &vertexgenai.Content{
				Role:  "user",
				Parts: []vertexgenai.Part{vertexgenai.Text(last)},
			})
			last = ""
		}
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			m.SystemInstruction = &vertexgenai.Content{
				Parts: []vertexgenai.Part{vertexgenai.Text(msg.Content)},
			}
		case "assistant":
			flush()
			history = append(history, &vertexgenai.Content{
				Role:  "model",
				Parts: []vertexgenai.Part{vertexgenai.Text(msg.Content)},
			})
		default:
			flush()
			last = msg.Content
		}
	}
	if last == "" {
		return "", errors.New("vertex: no user message")
	}

	cs := m.StartChat()
	cs.History = history

	it := cs.SendMessageStream(ctx, vertexgenai.Text(last))
	var b strings.Builder
	for {
		resp, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return "", err
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if t, ok := part.(vertexgenai.Text); ok {
					b.WriteString(string(t))
				}
			}
		}
	}
	return b.String(), nil
}
