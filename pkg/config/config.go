package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AssetEntry is one catalog row. The catalog is loaded once at startup and
// never mutated afterwards; display order follows file order.
type AssetEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Auth struct {
		SigningSecret string        `yaml:"signing_secret"`
		TokenTTL      time.Duration `yaml:"token_ttl"`
		SessionTTL    time.Duration `yaml:"session_ttl"`
	} `yaml:"auth"`
	Market struct {
		BaseURL    string        `yaml:"base_url"`
		Timeout    time.Duration `yaml:"timeout"`
		CacheTTL   time.Duration `yaml:"cache_ttl"`
		RatePerSec float64       `yaml:"rate_per_sec"`
		RateBurst  float64       `yaml:"rate_burst"`
	} `yaml:"market"`
	Risk struct {
		BaseURL     string        `yaml:"base_url"`
		BearerToken string        `yaml:"bearer_token"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"risk"`
	Cache struct {
		Backend string `yaml:"backend"` // memory or redis
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Assets []AssetEntry `yaml:"assets"`
}

// Load reads and parses a YAML configuration file. Validation happens in
// LoadWithEnv, after environment overrides had a chance to fill in secrets.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// Secrets are expected to arrive via the environment in deployed setups.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SIGNING_SECRET"); v != "" {
		c.Auth.SigningSecret = v
	}
	if v := os.Getenv("RISK_API_URL"); v != "" {
		c.Risk.BaseURL = v
	}
	if v := os.Getenv("RISK_API_TOKEN"); v != "" {
		c.Risk.BearerToken = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Backend = "redis"
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("ASSETS"); v != "" {
		// comma list of ids; display name falls back to the id
		c.Assets = c.Assets[:0]
		for _, id := range strings.Split(v, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				c.Assets = append(c.Assets, AssetEntry{ID: id, Name: id})
			}
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Auth.SigningSecret == "" {
		return fmt.Errorf("auth.signing_secret is required")
	}
	if c.Market.BaseURL == "" {
		return fmt.Errorf("market.base_url is required")
	}
	if len(c.Assets) == 0 {
		return fmt.Errorf("assets cannot be empty")
	}
	for i, a := range c.Assets {
		if a.ID == "" {
			return fmt.Errorf("assets[%d].id is required", i)
		}
	}
	if c.Cache.Backend != "" && c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	return nil
}
