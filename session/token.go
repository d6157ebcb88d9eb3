package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	apperrors "github.com/alexjbarnes/sessionbridge/internal/errors"
)

// TokenResponse is the token endpoint's JSON reply for both the
// password and refresh_token grants.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
}

// TokenError is a non-2xx reply from the token endpoint. Code and
// Description carry the standard OAuth error fields when the backend
// supplied them.
type TokenError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *TokenError) Error() string {
	if e.Code != "" {
		if e.Description != "" {
			return fmt.Sprintf("token endpoint error (%s): %s", e.Code, e.Description)
		}

		return fmt.Sprintf("token endpoint error (%s)", e.Code)
	}

	return fmt.Sprintf("token endpoint returned status %d", e.StatusCode)
}

// postTokenForm sends a form-encoded POST to the token endpoint over
// the dedicated bare token client and decodes the reply. Token endpoint
// failures come back untransformed as *TokenError; the caller decides
// what, if anything, to do about them.
func (a *Auth) postTokenForm(ctx context.Context, form url.Values) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.tokenClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseTokenError(body, resp.StatusCode)
	}

	var tr TokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}

	if tr.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response missing access_token", apperrors.ErrAPIResponse)
	}

	return &tr, nil
}

// parseTokenError probes the body for the standard OAuth error fields.
// Backends are not entirely consistent about error payloads, so the
// fields are extracted loosely rather than via a typed decode.
func parseTokenError(body []byte, statusCode int) error {
	return &TokenError{
		StatusCode:  statusCode,
		Code:        gjson.GetBytes(body, "error").Str,
		Description: gjson.GetBytes(body, "error_description").Str,
	}
}
