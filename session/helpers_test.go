package session

import (
	"io"
	"log/slog"
	"sync"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory CredentialStore for transport-level tests.
// Safe for concurrent use so handlers can read it mid-request.
type memStore struct {
	mu       sync.Mutex
	access   string
	refresh  string
	username string
	csrf     string
}

func (m *memStore) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access
}

func (m *memStore) RefreshToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh
}

func (m *memStore) Username() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.username
}

func (m *memStore) CSRFToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.csrf
}

func (m *memStore) SetTokens(access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = access, refresh
	return nil
}

func (m *memStore) SetUsername(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.username = username
	return nil
}

func (m *memStore) SetCSRFToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.csrf = token
	return nil
}

func (m *memStore) ClearAccessToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = ""
	return nil
}

func (m *memStore) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh, m.username = "", "", ""
	return nil
}

// newOAuthAuth creates an OAuth-mode Auth against the given base URL.
func newOAuthAuth(t *testing.T, baseURL string, store CredentialStore) *Auth {
	t.Helper()
	return New(Settings{
		BaseURL:  baseURL,
		ClientID: "test-client",
	}, store, testLogger())
}

// newCSRFAuth creates a CSRF-mode Auth against the given base URL.
func newCSRFAuth(t *testing.T, baseURL string, store CredentialStore) *Auth {
	t.Helper()
	return New(Settings{
		BaseURL: baseURL,
	}, store, testLogger())
}
