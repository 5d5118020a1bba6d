package tts

import "context"

// MaxInputChars is the provider-side limit on synthesis input; longer text
// is truncated before the request goes out.
const MaxInputChars = 2000

// Provider renders text into audio for a given voice. Implementations must
// be safe for concurrent use.
type Provider interface {
	Synthesize(ctx context.Context, text, voice string) (audio []byte, contentType string, err error)
	Close() error
}
