package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	apperrors "github.com/alexjbarnes/sessionbridge/internal/errors"
)

// refreshTransport is the response-failure interceptor, attached only
// in OAuth mode. A 401 triggers exactly one token refresh over the bare
// token client, then one replay of the original request through the
// inner chain (which re-reads the store and so picks up the new access
// token). If the refresh fails, the original 401 surfaces to the caller
// untouched: stored tokens are not cleared and no logout happens.
type refreshTransport struct {
	auth *Auth
	next http.RoundTripper
}

func (t *refreshTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// A request whose body was already consumed and cannot be rewound
	// is not replayable; hand the 401 back as-is.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	if rerr := t.auth.refreshTokens(req.Context()); rerr != nil {
		t.auth.logger.Debug("token refresh failed",
			slog.String("url", req.URL.String()),
			slog.String("error", rerr.Error()),
		)

		return resp, nil
	}

	// Done with the failed response; drain so the connection can be
	// reused, then replay once.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, berr := req.GetBody()
		if berr != nil {
			return t.next.RoundTrip(req)
		}

		retry.Body = body
	}

	return t.next.RoundTrip(retry)
}

// refreshTokens exchanges the stored refresh token for a new token pair
// and persists it. Concurrent callers share a single in-flight refresh.
func (a *Auth) refreshTokens(ctx context.Context) error {
	_, err, _ := a.refreshGroup.Do("refresh", func() (any, error) {
		refreshToken := a.store.RefreshToken()
		if refreshToken == "" {
			return nil, apperrors.ErrNoRefreshToken
		}

		form := url.Values{}
		form.Set("grant_type", "refresh_token")
		form.Set("client_id", a.settings.ClientID)
		form.Set("refresh_token", refreshToken)

		if a.settings.ClientSecret != "" {
			form.Set("client_secret", a.settings.ClientSecret)
		}

		tr, err := a.postTokenForm(ctx, form)
		if err != nil {
			return nil, err
		}

		if err := a.store.SetTokens(tr.AccessToken, tr.RefreshToken); err != nil {
			return nil, err
		}

		a.logger.Info("access token refreshed")

		return nil, nil
	})

	return err
}
