package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AuthModeNone  = "none"
	AuthModeToken = "token"
)

// Config holds the application configuration.
// Values come from a .env file, the environment and CLI flags bound through viper.
type Config struct {
	// Environment
	Environment string `mapstructure:"environment"`
	Port        string `mapstructure:"port"`

	// Catalog store
	DataDir     string `mapstructure:"data_dir"`
	WatchStore  bool   `mapstructure:"watch_store"`
	DefaultLang string `mapstructure:"default_language"`

	// Regeneration
	RegenerateTimeout time.Duration `mapstructure:"regenerate_timeout"`

	// Observability
	SentryDSN           string `mapstructure:"sentry_dsn"`
	CloudWatchNamespace string `mapstructure:"cloudwatch_namespace"`

	// Auth mode
	// - "none": regeneration is open (local dev)
	// - "token": regeneration requires an admin JWT signed with JWTSecret
	AuthMode  string `mapstructure:"auth_mode"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// LoadDotEnv loads .env into the process environment when present
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// SetDefaults registers the built-in defaults with viper
func SetDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("port", "8080")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("watch_store", true)
	viper.SetDefault("default_language", "en")
	viper.SetDefault("regenerate_timeout", 30*time.Second)
	viper.SetDefault("sentry_dsn", "")
	viper.SetDefault("cloudwatch_namespace", "PianoChords")
	viper.SetDefault("auth_mode", AuthModeNone)
	viper.SetDefault("jwt_secret", "")
}

// Load reads configuration from viper, applying defaults for any
// values not set by .env, environment or flags.
func Load() (*Config, error) {
	SetDefaults()
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects inconsistent settings
func (c *Config) Validate() error {
	switch c.AuthMode {
	case AuthModeNone:
	case AuthModeToken:
		if c.JWTSecret == "" {
			return fmt.Errorf("AUTH_MODE=token requires JWT_SECRET")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q (want none or token)", c.AuthMode)
	}
	if c.RegenerateTimeout <= 0 {
		return fmt.Errorf("REGENERATE_TIMEOUT must be positive, got %s", c.RegenerateTimeout)
	}
	return nil
}

// IsTokenMode returns true if regeneration requires an admin token
func (c *Config) IsTokenMode() bool {
	return c.AuthMode == AuthModeToken
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
