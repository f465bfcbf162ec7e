package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/config"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount int `json:"sampleCount"`
}

type imagenResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

type imagenGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	imagenConfig *config.ImagenConfig
}

func NewImagenGenerator(contentFetcher ContentFetcher, imagenConfig *config.ImagenConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &imagenGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		imagenConfig:   imagenConfig,
	}
}

func (i *imagenGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	httpReq, err := i.getRequest(ctx, prompt)
	if err != nil {
		i.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	rawRes, err := i.FetchContent(httpReq, 0)
	if err != nil {
		return nil, err
	}

	var res imagenResponse
	if err := json.Unmarshal(rawRes, &res); err != nil {
		i.logger.Error(err, "Failed to unmarshal the image response")
		return nil, &domain.MalformedResponseError{Field: "body"}
	}
	if len(res.Predictions) == 0 {
		return nil, &domain.EmptyResponseError{Provider: "imagen"}
	}
	if res.Predictions[0].BytesBase64Encoded == "" {
		return nil, &domain.MalformedResponseError{Field: "predictions[0].bytesBase64Encoded"}
	}

	decoded, err := base64.StdEncoding.DecodeString(res.Predictions[0].BytesBase64Encoded)
	if err != nil {
		i.logger.Error(err, "Failed to decode the image")
		return nil, &domain.MalformedResponseError{Field: "predictions[0].bytesBase64Encoded"}
	}

	return decoded, nil
}

func (i *imagenGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := imagenRequest{
		Instances:  []imagenInstance{{Prompt: prompt}},
		Parameters: imagenParameters{SampleCount: 1},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:predict", i.imagenConfig.ApiUrl, i.imagenConfig.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("x-goog-api-key", i.imagenConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
