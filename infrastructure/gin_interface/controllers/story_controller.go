package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hwang9170/demo-llm-hack/application/ports/inbound"
	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/infrastructure/gin_interface/dto"
)

type StoryController interface {
	MakeStory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyController struct {
	logger   outbound.LoggerPort
	pipeline inbound.StoryPipelinePort
}

func NewStoryController(logger outbound.LoggerPort, pipeline inbound.StoryPipelinePort) StoryController {
	return &storyController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (s *storyController) MakeStory(c *gin.Context) {
	var req dto.MakeStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.pipeline.MakeStory(c.Request.Context(), req.ToDomain())
	if err != nil {
		s.logger.Error(err, "Story pipeline failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewMakeStoryResponse(result))
}

func (s *storyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/story/make", s.MakeStory)
}
