package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/config"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

// StoryPlaceholder is returned when the completion came back empty, so the
// rest of the pipeline still has something to narrate and illustrate.
const StoryPlaceholder = "The response was empty."

const clovaTimeout = 60 * time.Second

type clovaRequest struct {
	Messages          []clovaMessage `json:"messages"`
	MaxTokens         int            `json:"maxTokens"`
	Temperature       float64        `json:"temperature"`
	TopP              float64        `json:"topP"`
	RepetitionPenalty float64        `json:"repetitionPenalty"`
}

type clovaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type clovaResponse struct {
	Result *struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"result"`
}

type clovaStoryWriter struct {
	ContentFetcher
	logger      outbound.LoggerPort
	clovaConfig *config.ClovaConfig
}

func NewClovaStoryWriter(contentFetcher ContentFetcher, clovaConfig *config.ClovaConfig, logger outbound.LoggerPort) outbound.StoryWriterPort {
	return &clovaStoryWriter{
		ContentFetcher: contentFetcher,
		logger:         logger,
		clovaConfig:    clovaConfig,
	}
}

func (c *clovaStoryWriter) WriteStory(ctx context.Context, req domain.StoryRequest) (string, error) {
	httpReq, err := c.getRequest(ctx, req)
	if err != nil {
		c.logger.Error(err, "Failed to create the HTTP request")
		return "", err
	}

	rawRes, err := c.FetchContent(httpReq, clovaTimeout)
	if err != nil {
		return "", err
	}

	var res clovaResponse
	if err := json.Unmarshal(rawRes, &res); err != nil {
		c.logger.Error(err, "Failed to unmarshal the chat completion response")
		return "", &domain.MalformedResponseError{Field: "body"}
	}
	if res.Result == nil || res.Result.Message == nil {
		return "", &domain.MalformedResponseError{Field: "result.message.content"}
	}

	story := strings.TrimSpace(res.Result.Message.Content)
	if story == "" {
		c.logger.Warn("Chat completion came back empty, using placeholder story")
		return StoryPlaceholder, nil
	}
	return story, nil
}

func (c *clovaStoryWriter) getRequest(ctx context.Context, req domain.StoryRequest) (*http.Request, error) {
	reqBody := clovaRequest{
		Messages: []clovaMessage{
			{Role: "system", Content: "You are a creative children's story writer."},
			{Role: "user", Content: buildStoryPrompt(req)},
		},
		MaxTokens:         1200,
		Temperature:       0.9,
		TopP:              0.9,
		RepetitionPenalty: 1.05,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.clovaConfig.Endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"Authorization":                "Bearer " + c.clovaConfig.ApiKey,
		"X-NCP-CLOVASTUDIO-REQUEST-ID": c.clovaConfig.RequestID,
		"Content-Type":                 "application/json; charset=utf-8",
		"Accept":                       "application/json",
	}
	for key, value := range reqHeaders {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

func buildStoryPrompt(req domain.StoryRequest) string {
	asks := []string{
		"Target age: " + req.Age,
		"Tone and style: " + req.Style,
		"Length: " + req.Length,
	}
	if req.Moral {
		asks = append(asks, "End with one simple moral in a single line.")
	}
	guide := strings.Join(asks, " · ")

	return fmt.Sprintf(`[Title]
%s

[Outline]
%s

[Writing guide]
%s

[Format]
- Split the story into 5 to 9 paragraphs, one scene each.
- Use vocabulary young children understand easily.
- Do not put headings on the paragraphs, keep the story flowing.`, req.Title, req.Outline, guide)
}
