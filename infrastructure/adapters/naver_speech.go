package adapters

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/config"
)

const speechTimeout = 30 * time.Second

type naverSpeechSynthesizer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	ttsConfig *config.TTSConfig
}

func NewNaverSpeechSynthesizer(contentFetcher ContentFetcher, ttsConfig *config.TTSConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &naverSpeechSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ttsConfig:      ttsConfig,
	}
}

func (n *naverSpeechSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeRequest) ([]byte, error) {
	httpReq, err := n.getRequest(ctx, req)
	if err != nil {
		n.logger.ErrorWithFields(err, "Failed to construct the HTTP request for speech synthesis", map[string]interface{}{
			"speaker": req.Speaker,
		})
		return nil, err
	}

	return n.FetchContent(httpReq, speechTimeout)
}

func (n *naverSpeechSynthesizer) getRequest(ctx context.Context, req outbound.SynthesizeRequest) (*http.Request, error) {
	form := url.Values{}
	form.Set("speaker", req.Speaker)
	form.Set("speed", req.Speed)
	form.Set("text", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.ttsConfig.ApiUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"X-NCP-APIGW-API-KEY-ID": n.ttsConfig.ClientID,
		"X-NCP-APIGW-API-KEY":    n.ttsConfig.ClientSecret,
		"Content-Type":           "application/x-www-form-urlencoded",
	}
	for key, value := range reqHeaders {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}
