package session

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mock_store_test.go -package=session

// CredentialStore is the durable key-value storage the session core
// reads and writes. Four named slots are used: access_token,
// refresh_token, username, and csrfToken; all values are plain strings.
// Getters return the empty string for absent slots.
//
// The production implementation is internal/credstore backed by bbolt.
// All credential state lives here; clients produced by the factory are
// themselves stateless.
type CredentialStore interface {
	AccessToken() string
	RefreshToken() string
	Username() string
	CSRFToken() string

	// SetTokens overwrites the access/refresh token pair.
	SetTokens(access, refresh string) error

	// SetUsername records the last successfully authenticated username.
	SetUsername(username string) error

	// SetCSRFToken overwrites the CSRF token.
	SetCSRFToken(token string) error

	// ClearAccessToken removes only the access token, leaving the
	// refresh token in place.
	ClearAccessToken() error

	// ClearSession removes access token, refresh token, and username.
	// Must be idempotent.
	ClearSession() error
}
