package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	DataDir       string   `mapstructure:"DATA_DIR"`
	StoreBackend  string   `mapstructure:"STORE_BACKEND"`
	SQLitePath    string   `mapstructure:"SQLITE_PATH"`
	SessionSecret string   `mapstructure:"SESSION_SECRET"`
	LoginDelayMS  int      `mapstructure:"LOGIN_DELAY_MS"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("STORE_BACKEND", "file")
	v.SetDefault("SQLITE_PATH", "./data/healthboard.db")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("LOGIN_DELAY_MS", 1000)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("STORE_BACKEND")
	v.BindEnv("SQLITE_PATH")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("LOGIN_DELAY_MS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoginDelay returns the simulated credential-check latency.
func (c *Config) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// Validate checks that the configuration is safe to run. The session token
// secret may only be auto-generated in development; any other mode must set
// one explicitly so sessions survive restarts.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("STORE_BACKEND must be \"file\", \"sqlite\", or \"memory\", got %q", c.StoreBackend)
	}
	if c.StoreBackend == "file" && c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required when STORE_BACKEND is \"file\"")
	}
	if c.StoreBackend == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required when STORE_BACKEND is \"sqlite\"")
	}
	if c.LoginDelayMS < 0 {
		return fmt.Errorf("LOGIN_DELAY_MS must not be negative, got %d", c.LoginDelayMS)
	}
	if !c.IsDev() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required when ENV is not development")
	}
	return nil
}
