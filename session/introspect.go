package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is a best-effort view into an access token's claims, for
// display purposes only.
type TokenInfo struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
}

// Introspect parses an access token as an unverified JWT and extracts
// display claims. The signature is deliberately not checked: the client
// never trusts these values for authorization decisions, it only shows
// them (CLI status, MCP session_status). Returns false for opaque
// (non-JWT) tokens, which some backends issue.
func Introspect(token string) (*TokenInfo, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}

	info := &TokenInfo{}

	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}

	if iss, err := parsed.Claims.GetIssuer(); err == nil {
		info.Issuer = iss
	}

	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, true
}
