package config

import (
	"fmt"
	"os"
)

type ImagenConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetImagenConfig() (*ImagenConfig, error) {
	apiKey := os.Getenv("GENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GENAI_API_KEY must be set")
	}
	model := os.Getenv("IMAGEN_MODEL")
	if model == "" {
		model = "imagen-3.0-generate-002"
	}
	apiUrl := os.Getenv("IMAGEN_API_URL")
	if apiUrl == "" {
		apiUrl = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &ImagenConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
