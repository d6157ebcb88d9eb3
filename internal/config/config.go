package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultOAuthEndpoint is the token issuance/refresh path used when
	// OAUTH_TOKEN_ENDPOINT is not configured.
	DefaultOAuthEndpoint = "/oauth/token"

	// DefaultCSRFEndpoint is the CSRF token source path used when
	// CSRF_TOKEN_ENDPOINT is not configured.
	DefaultCSRFEndpoint = "/session/token"
)

// Config holds all environment-based configuration for sessionbridge.
//
// Values may also come from an optional YAML file named by
// SESSIONBRIDGE_CONFIG; environment variables take precedence over the
// file, and defaults are applied last.
type Config struct {
	// Base URL of the backend all clients are bound to by default.
	BaseURL string `env:"BACKEND_BASE_URL" yaml:"base_url"`

	// OAuth client id. Presence selects OAuth mode; when empty the
	// backend is assumed to use cookie-session auth with a CSRF token.
	ClientID string `env:"OAUTH_CLIENT_ID" yaml:"client_id"`

	// OAuth client secret, sent with token requests when non-empty.
	ClientSecret string `env:"OAUTH_CLIENT_SECRET" yaml:"client_secret"`

	// Token issuance/refresh path or absolute URL.
	OAuthEndpoint string `env:"OAUTH_TOKEN_ENDPOINT" yaml:"oauth_endpoint"`

	// Optional redirect URI passed through to token requests.
	RedirectURI string `env:"OAUTH_REDIRECT_URI" yaml:"redirect_uri"`

	// CSRF token source path or absolute URL.
	CSRFEndpoint string `env:"CSRF_TOKEN_ENDPOINT" yaml:"csrf_endpoint"`

	// Path of the bbolt credential database. Defaults to
	// ~/.sessionbridge/credentials.db.
	CredentialsDB string `env:"CREDENTIALS_DB" yaml:"credentials_db"`

	// Environment controls log format.
	Environment string `env:"ENVIRONMENT" yaml:"environment"`

	// ConfigFile is the optional YAML file the other fields may be
	// loaded from. Only meaningful as an environment variable.
	ConfigFile string `env:"SESSIONBRIDGE_CONFIG" yaml:"-"`
}

// warnInsecureEnvFile checks whether the .env file (if present) has
// overly permissive permissions. On Unix systems, group or world
// readable files risk exposing credentials to other users.
func warnInsecureEnvFile() {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(".env")
	if err != nil {
		return // file does not exist, nothing to check
	}

	mode := info.Mode().Perm()
	if mode&0o077 != 0 {
		log.Printf("WARNING: .env file has insecure permissions %04o; recommended 0600", mode)
	}
}

// Load reads configuration for the process. Order of precedence, lowest
// first: YAML config file, environment variables, built-in defaults for
// the endpoint paths. A .env file is loaded into the environment first
// if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	warnInsecureEnvFile()

	cfg := &Config{}

	if path := os.Getenv("SESSIONBRIDGE_CONFIG"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFile reads a YAML config file into cfg. env.Parse runs afterwards,
// so environment variables override anything set here.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.OAuthEndpoint == "" {
		c.OAuthEndpoint = DefaultOAuthEndpoint
	}

	if c.CSRFEndpoint == "" {
		c.CSRFEndpoint = DefaultCSRFEndpoint
	}

	if c.Environment == "" {
		c.Environment = "development"
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BACKEND_BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}

	// A secret without a client id is almost certainly a configuration
	// mistake: the secret would never be sent.
	if c.ClientID == "" && c.ClientSecret != "" {
		return fmt.Errorf("OAUTH_CLIENT_SECRET is set but OAUTH_CLIENT_ID is empty")
	}

	return nil
}

// DefaultCredentialsDB returns the default credential database path:
// ~/.sessionbridge/credentials.db
func DefaultCredentialsDB() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}

	return filepath.Join(home, ".sessionbridge", "credentials.db"), nil
}

// CredentialsDBPath returns the configured credential database path,
// falling back to the default under the user's home directory.
func (c *Config) CredentialsDBPath() (string, error) {
	if c.CredentialsDB != "" {
		return c.CredentialsDB, nil
	}

	return DefaultCredentialsDB()
}

// IsProduction returns true when the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
