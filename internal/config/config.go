package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultBaseURL     = "https://hn.algolia.com/api/v1"
	DefaultQuery       = "react"
	DefaultHitsPerPage = 50

	// EnvPrefix prefixes every environment override, e.g. HNSEARCH_API_BASE_URL
	EnvPrefix = "HNSEARCH_"

	maxHitsPerPage = 1000
)

// Config represents the application configuration
type Config struct {
	Version    int         `toml:"version"`
	API        APISettings `toml:"api" envPrefix:"API_"`
	UISettings UISettings  `toml:"ui" envPrefix:"UI_"`
	Log        LogSettings `toml:"log" envPrefix:"LOG_"`
}

// APISettings configures the search API client
type APISettings struct {
	BaseURL        string `toml:"base_url" env:"BASE_URL"`
	DefaultQuery   string `toml:"default_query" env:"DEFAULT_QUERY"`
	HitsPerPage    int    `toml:"hits_per_page" env:"HITS_PER_PAGE"`
	TimeoutSeconds int    `toml:"timeout_seconds" env:"TIMEOUT_SECONDS"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen  bool `toml:"alt_screen" env:"ALT_SCREEN"`
	Hyperlinks bool `toml:"hyperlinks" env:"HYPERLINKS"` // OSC 8 links on titles
}

// LogSettings configures the log file
type LogSettings struct {
	Path  string `toml:"path" env:"PATH"`
	Level string `toml:"level" env:"LEVEL"`
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Validate reports settings the application cannot run with
func (c *Config) Validate() error {
	var errs []error
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL))
	}
	if c.API.HitsPerPage < 1 || c.API.HitsPerPage > maxHitsPerPage {
		errs = append(errs, fmt.Errorf("api.hits_per_page must be between 1 and %d, got %d", maxHitsPerPage, c.API.HitsPerPage))
	}
	if c.API.TimeoutSeconds < 1 {
		errs = append(errs, fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading path, or the default
// location under the user config directory when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/hnsearch/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "hnsearch", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file when it exists and applies environment overrides
func (cs *configService) Load() (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(cs.filePath); err == nil {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays HNSEARCH_* environment variables onto cfg
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// DefaultsWithEnv returns the defaults with environment overrides applied.
// It is the fallback when the config file cannot be loaded. On an
// environment error the plain defaults are returned with the error.
func DefaultsWithEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := ApplyEnv(cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:        DefaultBaseURL,
			DefaultQuery:   DefaultQuery,
			HitsPerPage:    DefaultHitsPerPage,
			TimeoutSeconds: 30,
		},
		UISettings: UISettings{
			AltScreen:  true,
			Hyperlinks: true,
		},
		Log: LogSettings{
			Path:  "hnsearch.log",
			Level: "info",
		},
	}
}
