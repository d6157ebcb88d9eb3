package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alexjbarnes/sessionbridge/internal/config"
	"github.com/alexjbarnes/sessionbridge/internal/credstore"
	"github.com/alexjbarnes/sessionbridge/internal/logging"
	"github.com/alexjbarnes/sessionbridge/session"
)

var Version = "dev"

const usage = `sessionbridge - authenticated backend access

Usage:
  sessionbridge login [username]   sign in and store credentials
  sessionbridge logout             discard the stored session
  sessionbridge status             show the stored session state
  sessionbridge bootstrap          fetch the CSRF token (csrf mode)
  sessionbridge get <path>         authorized GET against the backend
  sessionbridge version            print the version
`

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println(Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(cfg.Environment)

	dbPath, err := cfg.CredentialsDBPath()
	if err != nil {
		return fmt.Errorf("resolving credentials db path: %w", err)
	}

	store, err := credstore.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}
	defer store.Close()

	auth := session.New(session.Settings{
		BaseURL:       cfg.BaseURL,
		ClientID:      cfg.ClientID,
		ClientSecret:  cfg.ClientSecret,
		OAuthEndpoint: cfg.OAuthEndpoint,
		RedirectURI:   cfg.RedirectURI,
		CSRFEndpoint:  cfg.CSRFEndpoint,
	}, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch command {
	case "login":
		return runLogin(ctx, auth, store, os.Args[2:])
	case "logout":
		return runLogout(auth, logger)
	case "status":
		return runStatus(auth, store)
	case "bootstrap":
		return runBootstrap(ctx, auth, logger)
	case "get":
		return runGet(ctx, auth, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, auth *session.Auth, store session.CredentialStore, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		username = prompt("Username: ")
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	password := prompt("Password: ")
	if password == "" {
		return fmt.Errorf("password is required")
	}

	if auth.Mode() == session.ModeCSRF {
		// No token endpoint to talk to; the CSRF token is all this
		// mode needs.
		if err := auth.Bootstrap(ctx); err != nil {
			return fmt.Errorf("bootstrapping session: %w", err)
		}
		fmt.Println("session token fetched")
		return nil
	}

	if _, err := auth.Login(ctx, username, password); err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	fmt.Printf("logged in as %s\n", store.Username())
	return nil
}

func runLogout(auth *session.Auth, logger *slog.Logger) error {
	if err := auth.Logout(); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	logger.Debug("stored session discarded")
	fmt.Println("logged out")
	return nil
}

func runStatus(auth *session.Auth, store session.CredentialStore) error {
	fmt.Printf("mode:          %s\n", auth.Mode())

	if username := store.Username(); username != "" {
		fmt.Printf("username:      %s\n", username)
	}
	fmt.Printf("access token:  %s\n", presence(store.AccessToken()))
	fmt.Printf("refresh token: %s\n", presence(store.RefreshToken()))
	fmt.Printf("csrf token:    %s\n", presence(store.CSRFToken()))

	if token := store.AccessToken(); token != "" {
		if info, ok := session.Introspect(token); ok {
			if info.Subject != "" {
				fmt.Printf("subject:       %s\n", info.Subject)
			}
			if !info.ExpiresAt.IsZero() {
				fmt.Printf("expires:       %s\n", info.ExpiresAt.UTC().Format("2006-01-02 15:04:05 UTC"))
			}
		}
	}

	return nil
}

func runBootstrap(ctx context.Context, auth *session.Auth, logger *slog.Logger) error {
	if auth.Mode() == session.ModeOAuth {
		logger.Info("oauth mode needs no bootstrap")
		return nil
	}
	if err := auth.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrapping session: %w", err)
	}
	fmt.Println("session token fetched")
	return nil
}

func runGet(ctx context.Context, auth *session.Auth, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("get requires a path")
	}
	path := args[0]

	resp, err := auth.NewClient().Get(ctx, path)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(os.Stdout, resp.Body); err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("backend returned %s", resp.Status)
	}
	return nil
}

func prompt(label string) string {
	fmt.Fprint(os.Stderr, label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func presence(v string) string {
	if v == "" {
		return "absent"
	}
	return "present"
}
