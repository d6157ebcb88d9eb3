package session

import "net/http"

// authorizeTransport attaches the active credential to every outgoing
// request. Precedence is driven by which credentials are present in the
// store, not by Mode: a stored access token wins even in CSRF mode, so
// a manually injected token keeps working after a config change.
//
//  1. access_token present: Authorization: Bearer <token>
//  2. else csrfToken present: X-CSRF-Token: <token>
//  3. else: request passes through unmodified.
//
// Exactly one of the two headers is ever set. The transport never fails
// on its own and performs no network calls beyond the request itself.
type authorizeTransport struct {
	store CredentialStore
	next  http.RoundTripper
}

func (t *authorizeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.store.AccessToken(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)

		return t.next.RoundTrip(req)
	}

	if token := t.store.CSRFToken(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("X-CSRF-Token", token)

		return t.next.RoundTrip(req)
	}

	return t.next.RoundTrip(req)
}
