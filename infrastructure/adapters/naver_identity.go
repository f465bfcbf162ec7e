package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/config"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

const identityTimeout = 10 * time.Second

type naverTokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        string `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type naverProfileResponse struct {
	ResultCode string          `json:"resultcode"`
	Message    string          `json:"message"`
	Response   json.RawMessage `json:"response"`
}

type naverIdentityProvider struct {
	ContentFetcher
	logger      outbound.LoggerPort
	loginConfig *config.NaverLoginConfig
}

func NewNaverIdentityProvider(contentFetcher ContentFetcher, loginConfig *config.NaverLoginConfig, logger outbound.LoggerPort) outbound.IdentityProviderPort {
	return &naverIdentityProvider{
		ContentFetcher: contentFetcher,
		logger:         logger,
		loginConfig:    loginConfig,
	}
}

func (n *naverIdentityProvider) ExchangeCode(ctx context.Context, code string, state string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", n.loginConfig.ClientID)
	form.Set("client_secret", n.loginConfig.ClientSecret)
	form.Set("code", code)
	form.Set("state", state)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.loginConfig.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rawRes, err := n.FetchContent(httpReq, identityTimeout)
	if err != nil {
		return "", &domain.AuthError{Reason: "token exchange failed", Err: err}
	}

	var tokenRes naverTokenResponse
	if err := json.Unmarshal(rawRes, &tokenRes); err != nil {
		n.logger.Error(err, "Failed to unmarshal the token response")
		return "", &domain.AuthError{Reason: "malformed token response", Err: err}
	}
	if tokenRes.AccessToken == "" {
		n.logger.WarnWithFields("token response carried no access token", map[string]interface{}{
			"error":             tokenRes.Error,
			"error_description": tokenRes.ErrorDescription,
		})
		return "", &domain.AuthError{Reason: "token response missing access_token"}
	}

	return tokenRes.AccessToken, nil
}

func (n *naverIdentityProvider) FetchProfile(ctx context.Context, accessToken string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, n.loginConfig.ProfileURL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	rawRes, err := n.FetchContent(httpReq, identityTimeout)
	if err != nil {
		return nil, &domain.AuthError{Reason: "profile fetch failed", Err: err}
	}

	var profileRes naverProfileResponse
	if err := json.Unmarshal(rawRes, &profileRes); err != nil {
		n.logger.Error(err, "Failed to unmarshal the profile response")
		return nil, &domain.AuthError{Reason: "malformed profile response", Err: err}
	}
	if len(profileRes.Response) == 0 {
		return nil, &domain.AuthError{Reason: "profile response missing response object"}
	}

	return profileRes.Response, nil
}
