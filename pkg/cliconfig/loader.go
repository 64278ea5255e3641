package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when neither flag, env, nor context provides one.
const DefaultAPIURL = "http://localhost:8000"

// Env variable names recognized by the CLI.
const (
	EnvAPIURL  = "FLIITS_API_URL"
	EnvToken   = "FLIITS_TOKEN"
	EnvContext = "FLIITS_CONTEXT"
	EnvConfig  = "FLIITSCTL_CONFIG"
)

// ConfigFilePath returns the config file location, honoring FLIITSCTL_CONFIG.
func ConfigFilePath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fliitsctl.yaml"
	}
	return filepath.Join(home, ".config", "fliitsctl", "config.yaml")
}

// Load reads the CLI config file. A missing file yields an empty config.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigFilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{Contexts: map[string]*Context{}}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Contexts == nil {
		cfg.Contexts = map[string]*Context{}
	}
	return &cfg, nil
}

// Save writes the CLI config file, creating parent directories as needed.
// The file is written 0600 since it may hold a bearer token.
func Save(cfg *Config) error {
	path := ConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetContextFromEnv returns the FLIITS_CONTEXT override, if set.
func GetContextFromEnv() string {
	return os.Getenv(EnvContext)
}

// ResolveAPIURL picks the API base URL: flag > env > current context > default.
func ResolveAPIURL(flagURL string) string {
	if flagURL != "" {
		return flagURL
	}
	if env := os.Getenv(EnvAPIURL); env != "" {
		return env
	}
	if cfg, err := Load(); err == nil {
		if ctx := cfg.Current(); ctx != nil && ctx.APIURL != "" {
			return ctx.APIURL
		}
	}
	return DefaultAPIURL
}

// ResolveToken picks the bearer token: env > current context. Empty means
// unauthenticated; the server answers 401 and the caller surfaces it.
func ResolveToken() string {
	if env := os.Getenv(EnvToken); env != "" {
		return env
	}
	if cfg, err := Load(); err == nil {
		if ctx := cfg.Current(); ctx != nil {
			return ctx.Token
		}
	}
	return ""
}
