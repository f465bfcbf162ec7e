package outbound

import "context"

// SynthesizeRequest carries pre-truncated text; callers are responsible
// for clipping to domain.MaxSpeechRunes.
type SynthesizeRequest struct {
	Text    string
	Speaker string
	Speed   string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error)
}
