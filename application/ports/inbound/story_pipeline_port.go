package inbound

import (
	"context"

	"github.com/Hwang9170/demo-llm-hack/domain"
)

type StoryPipelinePort interface {
	MakeStory(ctx context.Context, req domain.StoryRequest) (domain.StoryResult, error)
}
