package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yuguda999/SautiNa/internal/api/handlers"
)

type Deps struct {
	Meta      *handlers.MetaHandler
	Pipeline  *handlers.PipelineHandler
	Translate *handlers.TranslateHandler

	// AudioDir, when nonempty, is served under /audio for locally stored
	// reply artifacts.
	AudioDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	api.GET("/health", d.Meta.Health)
	api.GET("/languages", d.Meta.Languages)

	api.POST("/text", d.Pipeline.Text)
	api.POST("/voice", d.Pipeline.Voice)
	api.POST("/text-to-speech", d.Pipeline.TextToSpeech)

	api.POST("/translate", d.Translate.Translate)

	if d.AudioDir != "" {
		r.Static("/audio", d.AudioDir)
	}
}
