package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// Login authenticates with the resource-owner password grant and
// persists the resulting tokens and username. The stored access token
// is cleared before the attempt so a failed login never leaves a stale
// active token behind; a failure is returned untransformed and touches
// nothing else in the store.
func (a *Auth) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	if err := a.store.ClearAccessToken(); err != nil {
		return nil, fmt.Errorf("clearing access token: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", a.settings.ClientID)
	form.Set("username", username)
	form.Set("password", password)

	if a.settings.ClientSecret != "" {
		form.Set("client_secret", a.settings.ClientSecret)
	}

	if a.settings.RedirectURI != "" {
		form.Set("redirect_uri", a.settings.RedirectURI)
	}

	tr, err := a.postTokenForm(ctx, form)
	if err != nil {
		return nil, err
	}

	if err := a.store.SetTokens(tr.AccessToken, tr.RefreshToken); err != nil {
		return nil, fmt.Errorf("persisting tokens: %w", err)
	}

	if err := a.store.SetUsername(username); err != nil {
		return nil, fmt.Errorf("persisting username: %w", err)
	}

	a.logger.Info("logged in", slog.String("username", username))

	return tr, nil
}

// Logout clears the access token, refresh token, and username from the
// store. Local-only: the token is not revoked server-side. Idempotent.
func (a *Auth) Logout() error {
	if err := a.store.ClearSession(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	a.logger.Info("logged out")

	return nil
}
