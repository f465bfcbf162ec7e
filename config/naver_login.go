package config

import (
	"fmt"
	"os"
)

type NaverLoginConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthorizeURL string
	TokenURL     string
	ProfileURL   string
}

func GetNaverLoginConfig() (*NaverLoginConfig, error) {
	clientID := os.Getenv("NAVER_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("NAVER_CLIENT_ID must be set")
	}
	clientSecret := os.Getenv("NAVER_CLIENT_SECRET")
	if clientSecret == "" {
		return nil, fmt.Errorf("NAVER_CLIENT_SECRET must be set")
	}
	redirectURI := os.Getenv("NAVER_REDIRECT_URI")
	if redirectURI == "" {
		return nil, fmt.Errorf("NAVER_REDIRECT_URI must be set")
	}
	authorizeURL := os.Getenv("NAVER_AUTHORIZE_URL")
	if authorizeURL == "" {
		authorizeURL = "https://nid.naver.com/oauth2.0/authorize"
	}
	tokenURL := os.Getenv("NAVER_TOKEN_URL")
	if tokenURL == "" {
		tokenURL = "https://nid.naver.com/oauth2.0/token"
	}
	profileURL := os.Getenv("NAVER_PROFILE_URL")
	if profileURL == "" {
		profileURL = "https://openapi.naver.com/v1/nid/me"
	}
	return &NaverLoginConfig{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		AuthorizeURL: authorizeURL,
		TokenURL:     tokenURL,
		ProfileURL:   profileURL,
	}, nil
}
