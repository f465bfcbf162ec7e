package config

import (
	"fmt"
	"os"
)

type TTSConfig struct {
	ApiUrl       string
	ClientID     string
	ClientSecret string
}

func GetTTSConfig() (*TTSConfig, error) {
	apiUrl := os.Getenv("TTS_API_URL")
	if apiUrl == "" {
		apiUrl = "https://naveropenapi.apigw.ntruss.com/tts-premium/v1/tts"
	}
	clientID := os.Getenv("TTS_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("TTS_CLIENT_ID must be set")
	}
	clientSecret := os.Getenv("TTS_CLIENT_SECRET")
	if clientSecret == "" {
		return nil, fmt.Errorf("TTS_CLIENT_SECRET must be set")
	}
	return &TTSConfig{
		ApiUrl:       apiUrl,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}, nil
}
