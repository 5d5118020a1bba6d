package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Yuguda999/SautiNa/internal/language"
	"github.com/Yuguda999/SautiNa/internal/providers/llm"
	"github.com/Yuguda999/SautiNa/internal/services"
	"github.com/Yuguda999/SautiNa/internal/utils"
)

// maxAudioUpload bounds voice uploads (10 MiB is plenty for one utterance).
const maxAudioUpload = 10 << 20

type PipelineHandler struct {
	pipeline services.PipelineService
	speech   services.SpeechService
	log      *logrus.Logger
}

func NewPipelineHandler(pipeline services.PipelineService, speech services.SpeechService, log *logrus.Logger) *PipelineHandler {
	return &PipelineHandler{pipeline: pipeline, speech: speech, log: log}
}

// HistoryTurn is one prior turn of the conversation, supplied by the caller.
type HistoryTurn struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type TextRequest struct {
	Text     string        `json:"text" binding:"required"`
	Language string        `json:"language"` // ha|yo|ig|pcm|en, optional
	Mode     string        `json:"mode"`     // chat|learn, default chat
	History  []HistoryTurn `json:"history"`
}

type TextResponse struct {
	Text             string `json:"text"`
	DetectedLanguage string `json:"detected_language"`
	AudioURL         string `json:"audio_url,omitempty"`
	Intent           string `json:"intent"`
}

func (h *PipelineHandler) Text(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PipelineHandler.Text", "invalid request body", err))
		return
	}

	// An unrecognized language code is not an error; it means no preference.
	lang := language.Language("")
	if l, ok := language.Parse(req.Language); ok {
		lang = l
	} else if req.Language != "" {
		h.log.WithField("language", req.Language).Warn("invalid language code, using default")
	}

	res := h.pipeline.ProcessText(c.Request.Context(), req.Text, lang, language.ParseMode(req.Mode), toMessages(req.History))

	c.JSON(http.StatusOK, TextResponse{
		Text:             res.ReplyText,
		DetectedLanguage: string(res.Language),
		AudioURL:         res.AudioURL,
		Intent:           string(res.Intent),
	})
}

type VoiceResponse struct {
	TranscribedText  string `json:"transcribed_text"`
	ResponseText     string `json:"response_text"`
	DetectedLanguage string `json:"detected_language"`
	AudioURL         string `json:"audio_url,omitempty"`
	Intent           string `json:"intent"`
}

func (h *PipelineHandler) Voice(c *gin.Context) {
	const op = "PipelineHandler.Voice"

	fh, err := c.FormFile("audio")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "audio file is required", err))
		return
	}
	if fh.Size > maxAudioUpload {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "audio file too large", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, maxAudioUpload))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}

	preferred := language.Language("")
	if code := c.PostForm("language"); code != "" {
		if l, ok := language.Parse(code); ok {
			preferred = l
		} else {
			h.log.WithField("language", code).Warn("invalid language code, using auto-detect")
		}
	}
	mode := language.ParseMode(c.PostForm("mode"))

	res, err := h.pipeline.ProcessVoice(c.Request.Context(), audio, fh.Filename, preferred, mode, nil)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, VoiceResponse{
		TranscribedText:  res.TranscribedText,
		ResponseText:     res.ReplyText,
		DetectedLanguage: string(res.Language),
		AudioURL:         res.AudioURL,
		Intent:           string(res.Intent),
	})
}

// TextToSpeech synthesizes arbitrary text and streams the audio back
// directly, without going through the pipeline.
func (h *PipelineHandler) TextToSpeech(c *gin.Context) {
	const op = "PipelineHandler.TextToSpeech"

	text := c.PostForm("text")
	if text == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "text is required", nil))
		return
	}
	lang, _ := language.Parse(c.DefaultPostForm("language", "en"))

	audio, contentType, err := h.speech.Synthesize(c.Request.Context(), text, lang)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="response.mp3"`)
	c.Data(http.StatusOK, contentType, audio)
}

func toMessages(history []HistoryTurn) []llm.Message {
	if len(history) == 0 {
		return nil
	}
	out := make([]llm.Message, 0, len(history))
	for _, t := range history {
		role := t.Role
		if role != "assistant" {
			role = "user"
		}
		out = append(out, llm.Message{Role: role, Content: t.Content})
	}
	return out
}
