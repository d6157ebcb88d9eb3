package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- resolveMode ---

func TestResolveMode_OAuthWhenClientIDSet(t *testing.T) {
	assert.Equal(t, ModeOAuth, resolveMode(Settings{ClientID: "abc"}))
}

func TestResolveMode_CSRFWhenClientIDEmpty(t *testing.T) {
	assert.Equal(t, ModeCSRF, resolveMode(Settings{}))
}

func TestResolveMode_CSRFWithSecretButNoClientID(t *testing.T) {
	// Only the client id drives mode selection.
	assert.Equal(t, ModeCSRF, resolveMode(Settings{ClientSecret: "s3cret"}))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "oauth", ModeOAuth.String())
	assert.Equal(t, "csrf", ModeCSRF.String())
	assert.Equal(t, "unknown", Mode(99).String())
}

// --- resolveEndpoint ---

func TestResolveEndpoint_JoinsRelativePath(t *testing.T) {
	assert.Equal(t, "https://api.example.com/oauth/token",
		resolveEndpoint("https://api.example.com", "/oauth/token"))
}

func TestResolveEndpoint_TrimsTrailingSlash(t *testing.T) {
	assert.Equal(t, "https://api.example.com/session/token",
		resolveEndpoint("https://api.example.com/", "/session/token"))
}

func TestResolveEndpoint_AddsLeadingSlash(t *testing.T) {
	assert.Equal(t, "https://api.example.com/oauth/token",
		resolveEndpoint("https://api.example.com", "oauth/token"))
}

func TestResolveEndpoint_AbsoluteURLPassesThrough(t *testing.T) {
	assert.Equal(t, "https://sso.example.com/token",
		resolveEndpoint("https://api.example.com", "https://sso.example.com/token"))
}

// --- New ---

func TestNew_ResolvesModeOnce(t *testing.T) {
	a := New(Settings{BaseURL: "https://api.example.com", ClientID: "c1"}, &memStore{}, testLogger())
	assert.Equal(t, ModeOAuth, a.Mode())

	b := New(Settings{BaseURL: "https://api.example.com"}, &memStore{}, testLogger())
	assert.Equal(t, ModeCSRF, b.Mode())
}

func TestNew_DefaultEndpoints(t *testing.T) {
	a := New(Settings{BaseURL: "https://api.example.com", ClientID: "c1"}, &memStore{}, testLogger())
	assert.Equal(t, "https://api.example.com/oauth/token", a.tokenURL)
	assert.Equal(t, "https://api.example.com/session/token", a.csrfURL)
}

func TestNew_CustomEndpoints(t *testing.T) {
	a := New(Settings{
		BaseURL:       "https://api.example.com",
		ClientID:      "c1",
		OAuthEndpoint: "/custom/token",
		CSRFEndpoint:  "https://other.example.com/csrf",
	}, &memStore{}, testLogger())
	assert.Equal(t, "https://api.example.com/custom/token", a.tokenURL)
	assert.Equal(t, "https://other.example.com/csrf", a.csrfURL)
}

func TestNew_NilLoggerAllowed(t *testing.T) {
	a := New(Settings{BaseURL: "https://api.example.com"}, &memStore{}, nil)
	assert.NotNil(t, a)
}
