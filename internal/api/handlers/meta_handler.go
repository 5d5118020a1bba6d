package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuguda999/SautiNa/internal/language"
)

type MetaHandler struct {
	appName     string
	appVersion  string
	llmEndpoint string
}

func NewMetaHandler(appName, appVersion, llmEndpoint string) *MetaHandler {
	return &MetaHandler{appName: appName, appVersion: appVersion, llmEndpoint: llmEndpoint}
}

type HealthResponse struct {
	Status         string `json:"status"`
	AppName        string `json:"app_name"`
	Version        string `json:"version"`
	NAtlasEndpoint string `json:"natlas_endpoint"`
}

func (h *MetaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		AppName:        h.appName,
		Version:        h.appVersion,
		NAtlasEndpoint: h.llmEndpoint,
	})
}

func (h *MetaHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": language.Infos()})
}
