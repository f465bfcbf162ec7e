package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hwang9170/demo-llm-hack/config"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

func naverLoginTestConfig(tokenURL, profileURL string) *config.NaverLoginConfig {
	return &config.NaverLoginConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/api/login/naver/callback",
		AuthorizeURL: "https://nid.naver.com/oauth2.0/authorize",
		TokenURL:     tokenURL,
		ProfileURL:   profileURL,
	}
}

func TestExchangeCodeReturnsAccessToken(t *testing.T) {
	var gotForm map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": "token-123",
			"token_type":   "bearer",
			"expires_in":   "3600",
		})
	}))
	defer server.Close()

	provider := NewNaverIdentityProvider(NewContentFetcher(noopLogger{}), naverLoginTestConfig(server.URL, ""), noopLogger{})

	token, err := provider.ExchangeCode(context.Background(), "auth-code", "state-1")

	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, []string{"authorization_code"}, gotForm["grant_type"])
	assert.Equal(t, []string{"client-id"}, gotForm["client_id"])
	assert.Equal(t, []string{"client-secret"}, gotForm["client_secret"])
	assert.Equal(t, []string{"auth-code"}, gotForm["code"])
	assert.Equal(t, []string{"state-1"}, gotForm["state"])
}

func TestExchangeCodeMissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_request",
			"error_description": "no valid data in session",
		})
	}))
	defer server.Close()

	provider := NewNaverIdentityProvider(NewContentFetcher(noopLogger{}), naverLoginTestConfig(server.URL, ""), noopLogger{})

	_, err := provider.ExchangeCode(context.Background(), "auth-code", "state-1")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "token response missing access_token", authErr.Reason)
}

func TestExchangeCodeUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "bad credentials")
	}))
	defer server.Close()

	provider := NewNaverIdentityProvider(NewContentFetcher(noopLogger{}), naverLoginTestConfig(server.URL, ""), noopLogger{})

	_, err := provider.ExchangeCode(context.Background(), "auth-code", "state-1")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	var upstreamErr *domain.UpstreamError
	require.True(t, errors.As(authErr.Err, &upstreamErr))
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
}

func TestFetchProfileExtractsResponseObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"resultcode":"00","message":"success","response":{"id":"u1","name":"Fox"}}`)
	}))
	defer server.Close()

	provider := NewNaverIdentityProvider(NewContentFetcher(noopLogger{}), naverLoginTestConfig("", server.URL), noopLogger{})

	profile, err := provider.FetchProfile(context.Background(), "token-123")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","name":"Fox"}`, string(profile))
}

func TestFetchProfileMissingResponseObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"resultcode":"024","message":"Authentication failed"}`)
	}))
	defer server.Close()

	provider := NewNaverIdentityProvider(NewContentFetcher(noopLogger{}), naverLoginTestConfig("", server.URL), noopLogger{})

	_, err := provider.FetchProfile(context.Background(), "token-123")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "profile response missing response object", authErr.Reason)
}

func TestFetchProfileUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	provider := NewNaverIdentityProvider(NewContentFetcher(noopLogger{}), naverLoginTestConfig("", server.URL), noopLogger{})

	_, err := provider.FetchProfile(context.Background(), "token-123")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	var upstreamErr *domain.UpstreamError
	assert.True(t, errors.As(authErr.Err, &upstreamErr))
}
