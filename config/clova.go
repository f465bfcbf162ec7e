package config

import (
	"fmt"
	"os"
)

type ClovaConfig struct {
	ApiKey    string
	RequestID string
	Model     string
	Endpoint  string
}

func GetClovaConfig() (*ClovaConfig, error) {
	apiKey := os.Getenv("CLOVA_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CLOVA_API_KEY must be set")
	}
	requestID := os.Getenv("CLOVA_REQUEST_ID")
	if requestID == "" {
		return nil, fmt.Errorf("CLOVA_REQUEST_ID must be set")
	}
	model := os.Getenv("CLOVA_MODEL")
	if model == "" {
		model = "HCX-005"
	}
	endpoint := os.Getenv("CLOVA_ENDPOINT")
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://clovastudio.stream.ntruss.com/testapp/v3/chat-completions/%s", model)
	}
	return &ClovaConfig{
		ApiKey:    apiKey,
		RequestID: requestID,
		Model:     model,
		Endpoint:  endpoint,
	}, nil
}
