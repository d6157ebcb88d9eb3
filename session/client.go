// Package session decides, once per process, how to authenticate
// against a web-service backend and transparently attaches the right
// credential to every outgoing request.
//
// The backend supports two mutually exclusive modes: OAuth2
// resource-owner password credentials with refresh, or cookie-session
// auth proven by a CSRF token header. The active mode is resolved from
// settings when the Auth context is constructed and never changes for
// the process lifetime.
package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Auth is the process-wide authentication context: settings, resolved
// mode, credential store, and the dedicated token client used for
// token-endpoint traffic. Construct it once at startup with New and
// share it; all methods are safe for concurrent use.
type Auth struct {
	settings Settings
	mode     Mode
	store    CredentialStore
	logger   *slog.Logger

	tokenURL string
	csrfURL  string

	// tokenClient talks to the token and CSRF endpoints with auth
	// interception disabled, so refresh and bootstrap calls can never
	// recursively trigger their own interceptors.
	tokenClient *http.Client

	// refreshGroup collapses concurrent 401-triggered refreshes into a
	// single token request.
	refreshGroup singleflight.Group
}

// New builds the authentication context. Mode is resolved here, once:
// OAuth iff settings.ClientID is non-empty, else CSRF. Construction
// cannot fail. A nil logger discards all output.
func New(settings Settings, store CredentialStore, logger *slog.Logger) *Auth {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &Auth{
		settings: settings,
		mode:     resolveMode(settings),
		store:    store,
		logger:   logger,
		tokenURL: resolveEndpoint(settings.BaseURL, orDefault(settings.OAuthEndpoint, "/oauth/token")),
		csrfURL:  resolveEndpoint(settings.BaseURL, orDefault(settings.CSRFEndpoint, "/session/token")),
	}
	a.tokenClient = a.newHTTPClient(true)

	logger.Debug("auth context initialized",
		slog.String("mode", a.mode.String()),
		slog.String("token_url", a.tokenURL),
	)

	return a
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}

// Mode returns the fixed, startup-resolved authentication mode.
func (a *Auth) Mode() Mode {
	return a.mode
}

// Client is an HTTP handle bound to a base URL. It holds no credential
// state of its own; two clients from the same Auth share only the
// credential store.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an authorized client bound to the configured base
// URL. Every request through it passes the request authorizer, and in
// OAuth mode a single refresh-and-retry is performed on 401 responses.
func (a *Auth) NewClient() *Client {
	return a.NewClientFor(a.settings.BaseURL)
}

// NewClientFor is NewClient bound to a different base URL.
func (a *Auth) NewClientFor(baseURL string) *Client {
	return &Client{
		httpClient: a.newHTTPClient(false),
		baseURL:    baseURL,
	}
}

// NewBareClient creates a client with auth interception disabled: no
// header injection, no refresh-and-retry. Used internally for the token
// endpoint itself, and available to callers who need an
// unauthenticated client.
func (a *Auth) NewBareClient() *Client {
	return a.NewBareClientFor(a.settings.BaseURL)
}

// NewBareClientFor is NewBareClient bound to a different base URL.
func (a *Auth) NewBareClientFor(baseURL string) *Client {
	return &Client{
		httpClient: a.newHTTPClient(true),
		baseURL:    baseURL,
	}
}

// newHTTPClient assembles the transport chain. Outermost to innermost:
// request-ID tagging, refresh coordination (OAuth mode only), request
// authorization, then the default transport. skipAuth drops the two
// auth interceptors but keeps request tagging.
func (a *Auth) newHTTPClient(skipAuth bool) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport

	if !skipAuth {
		rt = &authorizeTransport{store: a.store, next: rt}
		if a.mode == ModeOAuth {
			rt = &refreshTransport{auth: a, next: rt}
		}
	}

	rt = &requestIDTransport{logger: a.logger, next: rt}

	return &http.Client{Transport: rt}
}

// Resolve joins a path with the client's base URL. Absolute URLs pass
// through untouched.
func (c *Client) Resolve(path string) string {
	return resolveEndpoint(c.baseURL, path)
}

// NewRequest builds a request against the client's base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, c.Resolve(path), body)
}

// Do sends a request through the client's transport chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// Get issues a GET against a path relative to the base URL.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := c.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return c.Do(req)
}

// HTTPClient exposes the underlying *http.Client, for callers that
// need to hand the authorized client to another library.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// requestIDTransport stamps outgoing requests with an X-Request-ID and
// debug-logs the round trip. Attached to every client, bare or not.
type requestIDTransport struct {
	logger *slog.Logger
	next   http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := req.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Debug("request failed",
			slog.String("request_id", id),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)

		return nil, err
	}

	t.logger.Debug("request completed",
		slog.String("request_id", id),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
	)

	return resp, nil
}
