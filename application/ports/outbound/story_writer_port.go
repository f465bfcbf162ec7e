package outbound

import (
	"context"

	"github.com/Hwang9170/demo-llm-hack/domain"
)

type StoryWriterPort interface {
	WriteStory(ctx context.Context, req domain.StoryRequest) (string, error)
}
