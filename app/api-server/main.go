package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Yuguda999/SautiNa/config"
	"github.com/Yuguda999/SautiNa/internal/api/handlers"
	"github.com/Yuguda999/SautiNa/internal/api/middleware"
	"github.com/Yuguda999/SautiNa/internal/api/routes"
	"github.com/Yuguda999/SautiNa/internal/cache"
	"github.com/Yuguda999/SautiNa/internal/intent"
	"github.com/Yuguda999/SautiNa/internal/logger"
	"github.com/Yuguda999/SautiNa/internal/providers/llm"
	"github.com/Yuguda999/SautiNa/internal/providers/stt"
	"github.com/Yuguda999/SautiNa/internal/providers/tts"
	"github.com/Yuguda999/SautiNa/internal/search"
	"github.com/Yuguda999/SautiNa/internal/services"
	"github.com/Yuguda999/SautiNa/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New()
	ctx := context.Background()

	// LLM provider
	var llmProvider llm.Provider
	var err error
	switch cfg.LLMProvider {
	case "vertex":
		llmProvider, err = llm.NewVertexGemini(ctx, cfg.VertexProject, cfg.VertexRegion, cfg.VertexModel)
		if err != nil {
			log.WithError(err).Fatal("vertex init failed")
		}
	default:
		llmProvider = llm.NewNAtlas(cfg.NAtlasAPIURL, cfg.NAtlasModelName, cfg.NAtlasAPIKey)
	}
	defer llmProvider.Close()
	log.WithField("provider", cfg.LLMProvider).Info("llm provider ready")

	// STT provider
	var sttProvider stt.Provider
	switch cfg.STTProvider {
	case "google":
		sttProvider, err = stt.NewGoogleSpeech(ctx)
		if err != nil {
			log.WithError(err).Fatal("google speech init failed")
		}
	default:
		sttProvider = stt.NewWhisper(cfg.WhisperAPIURL, cfg.WhisperModel, cfg.WhisperAPIKey)
	}
	defer sttProvider.Close()

	ttsProvider := tts.NewYarnGPT(cfg.YarnGPTAPIURL, cfg.YarnGPTAPIKey)
	defer ttsProvider.Close()

	// Audio artifact storage
	var store storage.Uploader
	audioDir := ""
	if cfg.GCSBucket != "" {
		gcsStore, err := storage.NewGCSUploader(ctx, cfg.GCSBucket)
		if err != nil {
			log.WithError(err).Fatal("gcs init failed")
		}
		defer gcsStore.Close()
		store = gcsStore
	} else {
		localStore, err := storage.NewLocalStore(cfg.AudioDir)
		if err != nil {
			log.WithError(err).Fatal("audio dir init failed")
		}
		store = localStore
		audioDir = localStore.Dir()
	}

	// Optional Redis-backed search cache
	var searchCache cache.Cache
	rdb, err := config.InitRedis(ctx)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, search cache disabled")
	} else if rdb != nil {
		searchCache = cache.NewRedisCache(rdb)
		log.Info("search cache enabled")
	}

	// Search: Tavily primary when configured, DuckDuckGo fallback
	var primary search.Backend
	if t := search.NewTavily(cfg.TavilyAPIKey); t.Configured() {
		primary = t
	}
	searchSvc := search.NewService(primary, search.NewDuckDuckGo(), searchCache, 10*time.Minute, log)

	classifier := intent.NewClassifier(llmProvider, log)
	assistantSvc := services.NewAssistantService(llmProvider, classifier, searchSvc, cfg.SearchMaxResults, log)
	speechSvc := services.NewSpeechService(sttProvider, ttsProvider, store, log)
	pipelineSvc := services.NewPipelineService(speechSvc, assistantSvc, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors())

	routes.RegisterRoutes(r, routes.Deps{
		Meta:      handlers.NewMetaHandler(cfg.AppName, cfg.AppVersion, cfg.NAtlasAPIURL),
		Pipeline:  handlers.NewPipelineHandler(pipelineSvc, speechSvc, log),
		Translate: handlers.NewTranslateHandler(assistantSvc),
		AudioDir:  audioDir,
	})

	log.WithField("port", cfg.Port).Info("sautina starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
