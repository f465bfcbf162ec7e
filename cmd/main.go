package main

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/Hwang9170/demo-llm-hack/application/services"
	"github.com/Hwang9170/demo-llm-hack/config"
	"github.com/Hwang9170/demo-llm-hack/infrastructure/adapters"
	"github.com/Hwang9170/demo-llm-hack/infrastructure/gin_interface/controllers"
	"github.com/Hwang9170/demo-llm-hack/middleware"
)

func main() {
	_ = godotenv.Load()

	serverConfig := config.GetServerConfig()

	clovaConfig, err := config.GetClovaConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get clova config")
	}

	ttsConfig, err := config.GetTTSConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get tts config")
	}

	imagenConfig, err := config.GetImagenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get imagen config")
	}

	naverLoginConfig, err := config.GetNaverLoginConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get naver login config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(64, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	storyWriter := adapters.NewClovaStoryWriter(contentFetcher, clovaConfig, zeroLogger)
	speechSynthesizer := adapters.NewNaverSpeechSynthesizer(contentFetcher, ttsConfig, zeroLogger)
	imageGenerator := adapters.NewImagenGenerator(contentFetcher, imagenConfig, zeroLogger)
	identityProvider := adapters.NewNaverIdentityProvider(contentFetcher, naverLoginConfig, zeroLogger)

	mediaStore, err := adapters.NewFileMediaStore(serverConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create the media store")
	}

	storyPipeline := services.NewStoryPipelineOrchestrator(zeroLogger, workerPool, storyWriter, speechSynthesizer, imageGenerator, mediaStore)
	speechService := services.NewSpeechService(zeroLogger, speechSynthesizer, mediaStore)
	loginFlow := services.NewLoginFlow(zeroLogger, naverLoginConfig, identityProvider)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zeroLogger))

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Static(serverConfig.PublicPath, serverConfig.ContentDir)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	storyController := controllers.NewStoryController(zeroLogger, storyPipeline)
	speechController := controllers.NewSpeechController(zeroLogger, speechService)
	loginController := controllers.NewLoginController(zeroLogger, loginFlow)

	storyController.RegisterRoutes(router)
	speechController.RegisterRoutes(router)
	loginController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
