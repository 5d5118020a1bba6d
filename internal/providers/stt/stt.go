package stt

import "context"

// Provider transcribes one utterance. The returned language is an
// ISO-639-1-ish code as reported by the recognizer; callers map it into the
// supported set. Implementations must be safe for concurrent use.
type Provider interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (text string, detectedLang string, err error)
	Close() error
}
