package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Hwang9170/demo-llm-hack/application/ports/inbound"
	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

type speechService struct {
	logger            outbound.LoggerPort
	speechSynthesizer outbound.SpeechSynthesizerPort
	mediaStore        outbound.MediaStorePort
}

func NewSpeechService(logger outbound.LoggerPort, speechSynthesizer outbound.SpeechSynthesizerPort,
	mediaStore outbound.MediaStorePort) inbound.SpeechServicePort {
	return &speechService{
		logger:            logger,
		speechSynthesizer: speechSynthesizer,
		mediaStore:        mediaStore,
	}
}

// Speak synthesizes one utterance and stores it under a random name; these
// one-off artifacts are not part of the title-keyed audio cache.
func (s *speechService) Speak(ctx context.Context, req domain.SpeechRequest) (string, error) {
	audio, err := s.speechSynthesizer.Synthesize(ctx, outbound.SynthesizeRequest{
		Text:    domain.TruncateSpeechText(req.Text),
		Speaker: req.Speaker,
		Speed:   req.Speed,
	})
	if err != nil {
		return "", err
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s.mediaStore.SaveAudio(name, audio)
}
