package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Source describes one trending source. Type selects the adapter; URL
// overrides the adapter's default endpoint when set.
type Source struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	URL     string `yaml:"url,omitempty"`
	Enabled bool   `yaml:"enabled"`
}

// Channel describes one subscribed video channel.
type Channel struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

type Config struct {
	QueryTimeout  string    `yaml:"query_timeout,omitempty"`
	FeedTimeout   string    `yaml:"feed_timeout,omitempty"`
	RetryAttempts int       `yaml:"retry_attempts,omitempty"`
	RetryDelay    string    `yaml:"retry_delay,omitempty"`
	TrendingTTL   string    `yaml:"trending_ttl,omitempty"`
	FeedTTL       string    `yaml:"feed_ttl,omitempty"`
	BatchSize     int       `yaml:"batch_size,omitempty"`
	BatchDelay    string    `yaml:"batch_delay,omitempty"`
	MaxResults    int       `yaml:"max_results,omitempty"`
	Sources       []Source  `yaml:"sources"`
	Channels      []Channel `yaml:"channels"`
}

// QueryTimeoutDuration is the per-request deadline for the JSON search APIs.
func (c *Config) QueryTimeoutDuration() time.Duration {
	return duration(c.QueryTimeout, 5*time.Second)
}

// FeedTimeoutDuration is the per-request deadline for channel feeds, which
// carry larger payloads.
func (c *Config) FeedTimeoutDuration() time.Duration {
	return duration(c.FeedTimeout, 12*time.Second)
}

func (c *Config) RetryDelayDuration() time.Duration {
	return duration(c.RetryDelay, 1500*time.Millisecond)
}

func (c *Config) TrendingTTLDuration() time.Duration {
	return duration(c.TrendingTTL, 30*time.Minute)
}

func (c *Config) FeedTTLDuration() time.Duration {
	return duration(c.FeedTTL, 4*time.Hour)
}

func (c *Config) BatchDelayDuration() time.Duration {
	return duration(c.BatchDelay, 300*time.Millisecond)
}

func (c *Config) GetRetryAttempts() int {
	if c.RetryAttempts <= 0 {
		return 2
	}
	return c.RetryAttempts
}

func (c *Config) GetBatchSize() int {
	if c.BatchSize <= 0 {
		return 3
	}
	return c.BatchSize
}

func (c *Config) GetMaxResults() int {
	if c.MaxResults <= 0 {
		return 3
	}
	return c.MaxResults
}

func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func duration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "devtrends", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validTypes := map[string]bool{"hn": true, "devto": true}
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if !validTypes[s.Type] {
			return fmt.Errorf("source %q: unknown type %q (valid: hn, devto)", s.Name, s.Type)
		}
		if s.URL != "" {
			u, err := url.Parse(s.URL)
			if err != nil {
				return fmt.Errorf("source %q: invalid url: %w", s.Name, err)
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Name, u.Scheme)
			}
		}
	}
	for i, ch := range cfg.Channels {
		if ch.ID == "" {
			return fmt.Errorf("channel %d: id is required", i)
		}
	}
	return nil
}
