package outbound

import "context"

// IdentityProviderPort talks to the OAuth identity provider. ExchangeCode
// trades an authorization code for an access token; FetchProfile returns
// the provider's profile object as raw JSON.
type IdentityProviderPort interface {
	ExchangeCode(ctx context.Context, code string, state string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) ([]byte, error)
}
