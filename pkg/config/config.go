package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const (
	DefaultContentDir = "./src/content/blog"
	DefaultSiteURL    = "https://example.com"
	DefaultAppURL     = "http://localhost:8080"
	BlogRoutePrefix   = "/blog/"
)

// Config is built once per process and passed down explicitly.
// Nothing mutates it after Load returns.
type Config struct {
	ContentDir string
	SiteURL    string
	AppURL     string

	// HTTP server settings
	ServerBind string
	ServerPort string

	// Admin settings
	SessionSecret string
	OAuth         *oauth2.Config
	AdminUsers    []string // GitHub logins allowed into the admin API

	// Logging settings
	LogLevel  string
	LogFormat string

	// Post cache settings
	CacheTTL time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, so tests can avoid the
// real environment.
func FromEnv(lookup func(string) string) (*Config, error) {
	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		ContentDir:    getEnv("CONTENT_DIR", DefaultContentDir),
		SiteURL:       strings.TrimRight(getEnv("SITE_URL", DefaultSiteURL), "/"),
		AppURL:        strings.TrimRight(getEnv("APP_URL", DefaultAppURL), "/"),
		ServerBind:    getEnv("SERVER_BIND", "127.0.0.1"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SessionSecret: lookup("SESSION_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		CacheTTL:      30 * time.Second,
	}

	if ttl := lookup("CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", ttl, err)
		}
		cfg.CacheTTL = d
	}

	if clientID := lookup("GITHUB_CLIENT_ID"); clientID != "" {
		if cfg.SessionSecret == "" {
			return nil, fmt.Errorf("SESSION_SECRET is required when GITHUB_CLIENT_ID is set")
		}
		for _, login := range strings.Split(lookup("ADMIN_USERS"), ",") {
			if login = strings.TrimSpace(login); login != "" {
				cfg.AdminUsers = append(cfg.AdminUsers, strings.ToLower(login))
			}
		}
		if len(cfg.AdminUsers) == 0 {
			return nil, fmt.Errorf("ADMIN_USERS is required when GITHUB_CLIENT_ID is set")
		}
		cfg.OAuth = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: lookup("GITHUB_CLIENT_SECRET"),
			Scopes:       []string{"read:user"},
			Endpoint:     github.Endpoint,
			RedirectURL:  getEnv("GITHUB_REDIRECT_URL", cfg.AppURL+"/auth/callback"),
		}
	}

	return cfg, nil
}

// Addr is the listen address for the content API.
func (c *Config) Addr() string {
	return c.ServerBind + ":" + c.ServerPort
}

// AdminEnabled reports whether GitHub login is configured.
func (c *Config) AdminEnabled() bool {
	return c.OAuth != nil
}

// IsAdmin reports whether a GitHub login is on the admin list.
func (c *Config) IsAdmin(login string) bool {
	login = strings.ToLower(strings.TrimSpace(login))
	for _, admin := range c.AdminUsers {
		if admin == login {
			return true
		}
	}
	return false
}

// PostURL returns the public URL of a post with the given collection id.
func (c *Config) PostURL(id string) string {
	return c.SiteURL + BlogRoutePrefix + id + "/"
}
