package inbound

import (
	"context"

	"github.com/Hwang9170/demo-llm-hack/domain"
)

// LoginFlowPort drives the two-step OAuth login: AuthorizeURL issues the
// provider redirect (with a fresh state token), HandleCallback finishes
// the exchange started by that redirect.
type LoginFlowPort interface {
	AuthorizeURL() string
	HandleCallback(ctx context.Context, code string, state string) (domain.LoginResult, error)
}
