package session

import "strings"

// Mode is the startup-resolved choice between OAuth bearer-token auth
// and cookie-session CSRF auth. It is fixed for the lifetime of an
// Auth and never re-evaluated per request.
type Mode int

const (
	// ModeCSRF authenticates with a session cookie plus an
	// X-CSRF-Token header fetched at bootstrap.
	ModeCSRF Mode = iota

	// ModeOAuth authenticates with a Bearer access token obtained
	// through the resource-owner password grant.
	ModeOAuth
)

func (m Mode) String() string {
	switch m {
	case ModeOAuth:
		return "oauth"
	case ModeCSRF:
		return "csrf"
	default:
		return "unknown"
	}
}

// Settings is the immutable configuration an Auth is constructed from.
// Endpoint fields may be absolute URLs or paths relative to BaseURL.
type Settings struct {
	// BaseURL of the backend; clients from the factory bind to it
	// unless given another base explicitly.
	BaseURL string

	// ClientID selects OAuth mode when non-empty.
	ClientID string

	// ClientSecret is included in token requests when non-empty.
	ClientSecret string

	// OAuthEndpoint is the token issuance/refresh endpoint.
	// Empty means "/oauth/token".
	OAuthEndpoint string

	// RedirectURI is passed through to login token requests when set.
	RedirectURI string

	// CSRFEndpoint is the CSRF token source. Empty means "/session/token".
	CSRFEndpoint string
}

// resolveMode fixes the active mode from settings: OAuth iff a client
// id is configured. An empty client id is the valid "not oauth" case,
// not an error.
func resolveMode(s Settings) Mode {
	if s.ClientID != "" {
		return ModeOAuth
	}

	return ModeCSRF
}

// resolveEndpoint joins an endpoint with the base URL unless the
// endpoint is already absolute.
func resolveEndpoint(baseURL, endpoint string) string {
	if strings.Contains(endpoint, "://") {
		return endpoint
	}

	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	return strings.TrimRight(baseURL, "/") + endpoint
}
