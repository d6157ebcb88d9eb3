package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Bootstrap performs the startup credential fetch and should run before
// the first authorized request.
//
// In CSRF mode it GETs the CSRF endpoint over the bare token client and
// stores the response body verbatim as the CSRF token. No retry is
// attempted; the error is returned to the caller, and requests made
// before a successful bootstrap simply carry no CSRF header.
//
// In OAuth mode it is a no-op: tokens persisted by a previous run stay
// in effect until Login is called.
func (a *Auth) Bootstrap(ctx context.Context) error {
	if a.mode == ModeOAuth {
		a.logger.Debug("bootstrap: oauth mode, nothing to fetch")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.csrfURL, nil)
	if err != nil {
		return fmt.Errorf("creating CSRF token request: %w", err)
	}

	resp, err := a.tokenClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching CSRF token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading CSRF token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("CSRF endpoint returned status %d", resp.StatusCode)
	}

	// Stored verbatim: the endpoint's contract is a plain-text body
	// that is the token, whitespace included.
	if err := a.store.SetCSRFToken(string(body)); err != nil {
		return fmt.Errorf("persisting CSRF token: %w", err)
	}

	a.logger.Debug("bootstrap: CSRF token stored", slog.String("url", a.csrfURL))

	return nil
}

// BootstrapAsync is the fire-and-forget variant: it starts Bootstrap in
// the background and returns a channel that yields its result. Callers
// who do not read the channel accept the race between bootstrap
// completion and their first request, exactly as if bootstrap had been
// an unawaited startup side effect.
func (a *Auth) BootstrapAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	go func() {
		done <- a.Bootstrap(ctx)
	}()

	return done
}
