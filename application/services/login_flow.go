package services

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Hwang9170/demo-llm-hack/application/ports/inbound"
	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/config"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

const stateTTL = 10 * time.Minute

type loginFlow struct {
	logger      outbound.LoggerPort
	loginConfig *config.NaverLoginConfig
	identity    outbound.IdentityProviderPort
	states      *oauthStateStore
}

func NewLoginFlow(logger outbound.LoggerPort, loginConfig *config.NaverLoginConfig,
	identity outbound.IdentityProviderPort) inbound.LoginFlowPort {
	return &loginFlow{
		logger:      logger,
		loginConfig: loginConfig,
		identity:    identity,
		states:      newOAuthStateStore(stateTTL),
	}
}

// AuthorizeURL builds the provider redirect with a fresh state token. The
// token is remembered so the callback can be checked against it.
func (l *loginFlow) AuthorizeURL() string {
	state := uuid.NewString()
	l.states.Put(state)

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", l.loginConfig.ClientID)
	q.Set("redirect_uri", l.loginConfig.RedirectURI)
	q.Set("state", state)

	return l.loginConfig.AuthorizeURL + "?" + q.Encode()
}

// HandleCallback finishes the flow: verify the state, trade the code for
// an access token, fetch the profile. The access token is not retained.
func (l *loginFlow) HandleCallback(ctx context.Context, code string, state string) (domain.LoginResult, error) {
	if code == "" || state == "" {
		return domain.LoginResult{}, &domain.AuthError{Reason: "missing code or state"}
	}
	if !l.states.Consume(state) {
		l.logger.Warn("OAuth callback with unknown or expired state")
		return domain.LoginResult{}, &domain.AuthError{Reason: "unknown or expired state"}
	}

	accessToken, err := l.identity.ExchangeCode(ctx, code, state)
	if err != nil {
		l.logger.Error(err, "Token exchange failed")
		return domain.LoginResult{}, err
	}

	profile, err := l.identity.FetchProfile(ctx, accessToken)
	if err != nil {
		l.logger.Error(err, "Profile fetch failed")
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{
		Message: "login success",
		Profile: profile,
	}, nil
}
