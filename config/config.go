package config

import (
	"os"
	"strconv"
)

// Settings is process-wide configuration, loaded once at startup from
// environment variables (godotenv picks up .env in development).
type Settings struct {
	AppName    string
	AppVersion string
	Port       string

	// N-ATLaS LLM (OpenAI-compatible endpoint, deployed on Modal).
	NAtlasAPIURL    string
	NAtlasModelName string
	NAtlasAPIKey    string

	// Alternate LLM backend ("natlas" or "vertex").
	LLMProvider   string
	VertexProject string
	VertexRegion  string
	VertexModel   string

	// Whisper STT server (OpenAI-compatible /audio/transcriptions).
	WhisperAPIURL string
	WhisperModel  string
	WhisperAPIKey string

	// Alternate STT backend ("whisper" or "google").
	STTProvider string

	// YarnGPT TTS.
	YarnGPTAPIURL string
	YarnGPTAPIKey string

	// Audio artifact storage: local directory by default, GCS when a bucket
	// is configured.
	AudioDir  string
	GCSBucket string

	// Search.
	TavilyAPIKey     string
	SearchMaxResults int
}

func Load() Settings {
	return Settings{
		AppName:    getenv("APP_NAME", "SautiNa"),
		AppVersion: getenv("APP_VERSION", "1.0.0"),
		Port:       getenv("PORT", "8000"),

		NAtlasAPIURL:    getenv("NATLAS_API_URL", "https://ms-yuguda0--natlas-vllm-full-serve.modal.run/v1"),
		NAtlasModelName: getenv("NATLAS_MODEL_NAME", "n-atlas-full"),
		NAtlasAPIKey:    os.Getenv("NATLAS_API_KEY"),

		LLMProvider:   getenv("LLM_PROVIDER", "natlas"),
		VertexProject: os.Getenv("VERTEX_PROJECT_ID"),
		VertexRegion:  getenv("VERTEX_REGION", "us-central1"),
		VertexModel:   os.Getenv("VERTEX_MODEL"),

		WhisperAPIURL: getenv("WHISPER_API_URL", "http://localhost:9000/v1"),
		WhisperModel:  getenv("WHISPER_MODEL", "base"),
		WhisperAPIKey: os.Getenv("WHISPER_API_KEY"),

		STTProvider: getenv("STT_PROVIDER", "whisper"),

		YarnGPTAPIURL: getenv("YARNGPT_API_URL", "https://yarngpt.ai/api/v1/tts"),
		YarnGPTAPIKey: os.Getenv("YARNGPT_API_KEY"),

		AudioDir:  getenv("AUDIO_DIR", "/tmp/sautina"),
		GCSBucket: os.Getenv("GCS_BUCKET"),

		TavilyAPIKey:     os.Getenv("TAVILY_API_KEY"),
		SearchMaxResults: getenvInt("SEARCH_MAX_RESULTS", 5),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
