package config

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the gourmet section of the YAML file.
const (
	EnvBaseURL = "GOURMET_URI"
	EnvAPIKey  = "API_KEY"
)

// MaxCount is the largest page size the search API accepts.
const MaxCount = 100

// Configuration validation errors.
var (
	ErrMissingBaseURL   = errors.New("gourmet.base_url is required (or set " + EnvBaseURL + ")")
	ErrMissingAPIKey    = errors.New("gourmet.api_key is required (or set " + EnvAPIKey + ")")
	ErrInvalidCount     = errors.New("gourmet.count must be between 1 and 100")
	ErrInvalidPort      = errors.New("server.port must be between 1 and 65535")
	ErrInvalidRateLimit = errors.New("server.rate_limit_per_sec must be positive")
)

// Config represents the overall application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gourmet GourmetConfig `yaml:"gourmet"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// GourmetConfig holds the settings of the upstream search API.
type GourmetConfig struct {
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	Keyword        string        `yaml:"keyword"`
	Count          int           `yaml:"count"`
	Format         string        `yaml:"format"`
	UserAgent      string        `yaml:"user_agent"`
	HTTPProxy      string        `yaml:"http_proxy"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// Load reads the configuration from the given path. An empty path yields
// the defaults. GOURMET_URI and API_KEY take precedence over the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Gourmet.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Gourmet.APIKey = v
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec == 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 5
	}

	if c.Gourmet.Keyword == "" {
		c.Gourmet.Keyword = "福岡"
	}
	if c.Gourmet.Count == 0 {
		c.Gourmet.Count = MaxCount
	}
	if c.Gourmet.Format == "" {
		c.Gourmet.Format = "json"
	} else if c.Gourmet.Format != "json" {
		log.Printf("gourmet.format %q is not supported; forcing json", c.Gourmet.Format)
		c.Gourmet.Format = "json"
	}
	if c.Gourmet.UserAgent == "" {
		c.Gourmet.UserAgent = "gourmet-search/1.0"
	}
	if c.Gourmet.TimeoutSeconds <= 0 {
		c.Gourmet.TimeoutSeconds = 30
	}
	c.Gourmet.Timeout = time.Duration(c.Gourmet.TimeoutSeconds) * time.Second
}

// Validate checks the settings required to talk to the search API.
func (c *Config) Validate() error {
	if c.Gourmet.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Gourmet.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Gourmet.Count < 1 || c.Gourmet.Count > MaxCount {
		return ErrInvalidCount
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Server.RateLimitPerSec < 0 {
		return ErrInvalidRateLimit
	}
	return nil
}
