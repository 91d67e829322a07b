// Package config loads application settings from defaults, an optional
// config file, a .env file and CIVICLINK_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// CIVICLINK_PROVIDER_NAME for provider.name.
const EnvPrefix = "CIVICLINK"

type Config struct {
	Provider    Provider    `mapstructure:"provider"`
	Translation Translation `mapstructure:"translation"`
	Server      Server      `mapstructure:"server"`
	Store       Store       `mapstructure:"store"`
	Log         Log         `mapstructure:"log"`
}

type Provider struct {
	Name      string    `mapstructure:"name"`
	Google    Google    `mapstructure:"google"`
	MyMemory  MyMemory  `mapstructure:"mymemory"`
	Amazon    Amazon    `mapstructure:"amazon"`
	RateLimit RateLimit `mapstructure:"rate_limit"`

	// ProtectMarkup keeps URLs, e-mail addresses, HTML tags and code spans
	// out of provider input.
	ProtectMarkup bool `mapstructure:"protect_markup"`
	// ValidateLanguage rejects chunks whose output is detected as another
	// language than the target.
	ValidateLanguage bool `mapstructure:"validate_language"`
}

type Google struct {
	Credentials string `mapstructure:"credentials"`
	ProjectID   string `mapstructure:"project_id"`
}

type MyMemory struct {
	Email   string `mapstructure:"email"`
	BaseURL string `mapstructure:"base_url"`
}

type Amazon struct {
	Region string `mapstructure:"region"`
}

// RateLimit throttles provider calls. A zero RequestsPerSecond disables it.
type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type Translation struct {
	MaxChunkSize   int           `mapstructure:"max_chunk_size"`
	ChunkTimeout   time.Duration `mapstructure:"chunk_timeout"`
	AllowedTargets []string      `mapstructure:"allowed_targets"`
}

type Server struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type Store struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type Log struct {
	Verbose bool `mapstructure:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider.name", "google")
	v.SetDefault("provider.google.credentials", "")
	v.SetDefault("provider.google.project_id", "")
	v.SetDefault("provider.mymemory.email", "")
	v.SetDefault("provider.mymemory.base_url", "https://api.mymemory.translated.net")
	v.SetDefault("provider.amazon.region", "us-east-1")
	v.SetDefault("provider.rate_limit.requests_per_second", 5.0)
	v.SetDefault("provider.rate_limit.burst", 5)
	v.SetDefault("provider.protect_markup", true)
	v.SetDefault("provider.validate_language", false)

	v.SetDefault("translation.max_chunk_size", 5000)
	v.SetDefault("translation.chunk_timeout", 30*time.Second)
	v.SetDefault("translation.allowed_targets", []string{})

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)

	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", "./data/civiclink.db")

	v.SetDefault("log.verbose", false)
}

// Load reads the configuration. configFile may be empty, in which case only
// defaults and the environment are used.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Provider.Name) == "" {
		return fmt.Errorf("provider.name is required")
	}
	if c.Translation.MaxChunkSize <= 0 {
		return fmt.Errorf("translation.max_chunk_size must be positive, got %d", c.Translation.MaxChunkSize)
	}
	if c.Translation.ChunkTimeout < 0 {
		return fmt.Errorf("translation.chunk_timeout must not be negative")
	}
	if c.Provider.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("provider.rate_limit.requests_per_second must not be negative")
	}
	return nil
}
