package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Hwang9170/demo-llm-hack/application/ports/inbound"
	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/domain"
	"github.com/Hwang9170/demo-llm-hack/infrastructure/gin_interface/dto"
)

type SpeechController interface {
	Speak(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type speechController struct {
	logger        outbound.LoggerPort
	speechService inbound.SpeechServicePort
}

func NewSpeechController(logger outbound.LoggerPort, speechService inbound.SpeechServicePort) SpeechController {
	return &speechController{
		logger:        logger,
		speechService: speechService,
	}
}

// Speak rejects empty text before the provider is ever contacted.
func (s *speechController) Speak(c *gin.Context) {
	var req dto.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is empty"})
		return
	}
	speaker := req.Speaker
	if speaker == "" {
		speaker = domain.DefaultSpeaker
	}
	speed := req.Speed
	if speed == "" {
		speed = domain.DefaultSpeed
	}

	audioPath, err := s.speechService.Speak(c.Request.Context(), domain.SpeechRequest{
		Text:    text,
		Speaker: speaker,
		Speed:   speed,
	})
	if err != nil {
		s.logger.Error(err, "Speech synthesis failed")
		raw := ""
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			raw = upstreamErr.Body
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "raw": raw})
		return
	}

	c.JSON(http.StatusOK, dto.SpeechResponse{TTSAudioPath: audioPath})
}

func (s *speechController) RegisterRoutes(g *gin.Engine) {
	g.POST("/tts", s.Speak)
}
