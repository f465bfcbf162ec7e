package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hwang9170/demo-llm-hack/application/ports/inbound"
	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
)

type LoginController interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type loginController struct {
	logger    outbound.LoggerPort
	loginFlow inbound.LoginFlowPort
}

func NewLoginController(logger outbound.LoggerPort, loginFlow inbound.LoginFlowPort) LoginController {
	return &loginController{
		logger:    logger,
		loginFlow: loginFlow,
	}
}

func (l *loginController) Login(c *gin.Context) {
	c.Redirect(http.StatusFound, l.loginFlow.AuthorizeURL())
}

func (l *loginController) Callback(c *gin.Context) {
	result, err := l.loginFlow.HandleCallback(c.Request.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		l.logger.Error(err, "OAuth callback failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"profile": json.RawMessage(result.Profile),
	})
}

func (l *loginController) RegisterRoutes(g *gin.Engine) {
	g.GET("/api/login/naver", l.Login)
	g.GET("/api/login/naver/callback", l.Callback)
}
