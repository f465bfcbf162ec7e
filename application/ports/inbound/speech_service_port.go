package inbound

import (
	"context"

	"github.com/Hwang9170/demo-llm-hack/domain"
)

// SpeechServicePort synthesizes one utterance and returns the public path
// of the persisted audio artifact.
type SpeechServicePort interface {
	Speak(ctx context.Context, req domain.SpeechRequest) (string, error)
}
