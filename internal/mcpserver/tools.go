// Package mcpserver registers MCP tools that expose session operations.
// It adapts the session package to the MCP SDK's tool handler interface.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/alexjbarnes/sessionbridge/session"
)

// maxFetchBytes caps how much of a backend response body a fetch tool
// call will return.
const maxFetchBytes = 1 << 20

// RegisterTools adds all session tools to the given MCP server.
func RegisterTools(server *mcp.Server, auth *session.Auth, store session.CredentialStore) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "login",
		Description: "Authenticate against the backend with username and password. Persists the resulting tokens; subsequent fetch calls are authorized automatically.",
	}, loginHandler(auth, store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "logout",
		Description: "Clear the stored access token, refresh token, and username. Local only; the token is not revoked server-side.",
	}, logoutHandler(auth))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "session_status",
		Description: "Report the active auth mode, which credentials are stored, and (for JWT access tokens) subject and expiry.",
	}, statusHandler(auth, store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch",
		Description: "GET a path on the backend through an authorized client. The correct credential header is attached automatically; in OAuth mode an expired token is refreshed and the request retried once.",
	}, fetchHandler(auth))
}

// --- Input types ---
// The MCP SDK infers JSON schema from these struct types via jsonschema tags.

// LoginInput holds parameters for login.
type LoginInput struct {
	Username string `json:"username" jsonschema:"required,backend username"`
	Password string `json:"password" jsonschema:"required,backend password"`
}

// LogoutInput has no parameters.
type LogoutInput struct{}

// StatusInput has no parameters.
type StatusInput struct{}

// FetchInput holds parameters for fetch.
type FetchInput struct {
	Path string `json:"path" jsonschema:"required,path relative to the configured backend base URL"`
}

// --- Result types ---

// LoginResult reports the outcome of a login.
type LoginResult struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

// LogoutResult reports the outcome of a logout.
type LogoutResult struct {
	LoggedOut bool `json:"logged_out"`
}

// StatusResult describes the stored session state.
type StatusResult struct {
	Mode            string `json:"mode"`
	Username        string `json:"username,omitempty"`
	HasAccessToken  bool   `json:"has_access_token"`
	HasRefreshToken bool   `json:"has_refresh_token"`
	HasCSRFToken    bool   `json:"has_csrf_token"`
	TokenSubject    string `json:"token_subject,omitempty"`
	TokenExpiresAt  string `json:"token_expires_at,omitempty"`
}

// FetchResult carries a backend response back to the caller.
type FetchResult struct {
	Status    int    `json:"status"`
	Body      string `json:"body"`
	Truncated bool   `json:"truncated,omitempty"`
}

// --- Handlers ---

func loginHandler(auth *session.Auth, store session.CredentialStore) mcp.ToolHandlerFor[LoginInput, *LoginResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LoginInput) (*mcp.CallToolResult, *LoginResult, error) {
		tr, err := auth.Login(ctx, input.Username, input.Password)
		if err != nil {
			return nil, nil, err
		}
		result := &LoginResult{
			Username:  store.Username(),
			TokenType: tr.TokenType,
			ExpiresIn: tr.ExpiresIn,
		}
		return textResult(result), result, nil
	}
}

func logoutHandler(auth *session.Auth) mcp.ToolHandlerFor[LogoutInput, *LogoutResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ LogoutInput) (*mcp.CallToolResult, *LogoutResult, error) {
		if err := auth.Logout(); err != nil {
			return nil, nil, err
		}
		result := &LogoutResult{LoggedOut: true}
		return textResult(result), result, nil
	}
}

func statusHandler(auth *session.Auth, store session.CredentialStore) mcp.ToolHandlerFor[StatusInput, *StatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, *StatusResult, error) {
		result := &StatusResult{
			Mode:            auth.Mode().String(),
			Username:        store.Username(),
			HasAccessToken:  store.AccessToken() != "",
			HasRefreshToken: store.RefreshToken() != "",
			HasCSRFToken:    store.CSRFToken() != "",
		}

		if token := store.AccessToken(); token != "" {
			if info, ok := session.Introspect(token); ok {
				result.TokenSubject = info.Subject
				if !info.ExpiresAt.IsZero() {
					result.TokenExpiresAt = info.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z")
				}
			}
		}

		return textResult(result), result, nil
	}
}

func fetchHandler(auth *session.Auth) mcp.ToolHandlerFor[FetchInput, *FetchResult] {
	client := auth.NewClient()

	return func(ctx context.Context, _ *mcp.CallToolRequest, input FetchInput) (*mcp.CallToolResult, *FetchResult, error) {
		resp, err := client.Get(ctx, input.Path)
		if err != nil {
			return nil, nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
		if err != nil {
			return nil, nil, fmt.Errorf("reading response body: %w", err)
		}

		result := &FetchResult{Status: resp.StatusCode}
		if len(body) > maxFetchBytes {
			body = body[:maxFetchBytes]
			result.Truncated = true
		}
		result.Body = string(body)

		out := textResult(result)
		if resp.StatusCode >= http.StatusBadRequest {
			out.IsError = true
		}

		return out, result, nil
	}
}

// textResult builds a CallToolResult with JSON text content from any value.
// This provides the unstructured content alongside the structured output
// that the SDK populates automatically.
func textResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("error marshaling result: %v", err)}},
			IsError: true,
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}
