package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/alexjbarnes/sessionbridge/internal/config"
	"github.com/alexjbarnes/sessionbridge/internal/credstore"
	"github.com/alexjbarnes/sessionbridge/internal/logging"
	"github.com/alexjbarnes/sessionbridge/internal/mcpserver"
	"github.com/alexjbarnes/sessionbridge/session"
)

var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Stdout carries the MCP protocol, so all logging goes to stderr.
	logger := logging.NewLogger(cfg.Environment)
	logger.Info("sessionbridge-mcp starting",
		slog.String("version", Version),
		slog.String("backend", cfg.BaseURL),
	)

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

	// In csrf mode the session token must be in place before the first
	// tool call hits the backend. Failure is non-fatal here; a later
	// bootstrap via the backend may still succeed once it is reachable.
	if auth.Mode() == session.ModeCSRF {
		if err := auth.Bootstrap(ctx); err != nil {
			logger.Warn("session bootstrap failed", slog.String("error", err.Error()))
		}
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "sessionbridge-mcp", Version: Version},
		nil,
	)
	mcpserver.RegisterTools(server, auth, store)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.ConfigFile != "" {
		g.Go(func() error {
			err := config.Watch(gctx, cfg.ConfigFile, logger)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		logger.Info("serving MCP over stdio")
		return server.Run(gctx, &mcp.StdioTransport{})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
