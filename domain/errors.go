package domain

import "fmt"

// UpstreamError reports a non-success status from a provider, keeping the
// raw response body for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError reports a success response that is missing an
// expected field.
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("upstream response missing %s", e.Field)
}

// EmptyResponseError reports a provider that answered successfully but
// returned zero results.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s returned no results", e.Provider)
}

// AuthError reports a failure anywhere in the OAuth token or profile
// exchange.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("auth failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
