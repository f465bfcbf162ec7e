package outbound

import "context"

type ImageGeneratorPort interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
