package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuguda999/SautiNa/internal/language"
	"github.com/Yuguda999/SautiNa/internal/services"
	"github.com/Yuguda999/SautiNa/internal/utils"
)

type TranslateHandler struct {
	assistant services.AssistantService
}

func NewTranslateHandler(assistant services.AssistantService) *TranslateHandler {
	return &TranslateHandler{assistant: assistant}
}

type TranslateRequest struct {
	Text           string `json:"text" binding:"required"`
	SourceLanguage string `json:"source_language" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

type TranslateResponse struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

func (h *TranslateHandler) Translate(c *gin.Context) {
	const op = "TranslateHandler.Translate"

	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	src, ok := language.Parse(req.SourceLanguage)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unsupported source_language", nil))
		return
	}
	dst, ok := language.Parse(req.TargetLanguage)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unsupported target_language", nil))
		return
	}

	out, err := h.assistant.Translate(c.Request.Context(), req.Text, src, dst)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TranslateResponse{
		OriginalText:   req.Text,
		TranslatedText: out,
		SourceLanguage: string(src),
		TargetLanguage: string(dst),
	})
}
