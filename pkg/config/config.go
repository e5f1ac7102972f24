// Package config loads cosmic settings from flags' defaults, .cosmic.yaml and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/cosmic/pkg/apod"
)

// Config is the resolved runtime configuration.
type Config struct {
	APIKey   string        `mapstructure:"api_key"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogFile  string        `mapstructure:"log_file"`
	LogLevel string        `mapstructure:"log_level"`
}

// DefaultTimeout bounds a single API request unless configured otherwise.
const DefaultTimeout = 30 * time.Second

// Load resolves configuration. Precedence is environment, then config file,
// then defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("api_key", "")
	v.SetDefault("endpoint", apod.DefaultEndpoint)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetConfigName(".cosmic") // .yaml is implicit
	v.SetEnvPrefix("COSMIC")
	v.AutomaticEnv()

	if override := os.Getenv("COSMIC_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	apiKey := v.GetString("api_key")
	// NASA's own examples export the key as NASA_API_KEY.
	if _, set := os.LookupEnv("COSMIC_API_KEY"); !set {
		if nasa, ok := os.LookupEnv("NASA_API_KEY"); ok {
			apiKey = nasa
		}
	}

	timeout, err := parseTimeout(v.Get("timeout"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:   apiKey,
		Endpoint: v.GetString("endpoint"),
		Timeout:  timeout,
		LogFile:  v.GetString("log_file"),
		LogLevel: v.GetString("log_level"),
	}
	if cfg.LogFile != "" {
		expanded, err := homedir.Expand(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		cfg.LogFile = expanded
	}
	return cfg, nil
}

// parseTimeout reads a duration such as "30s" or "1m". A bare number other
// than 0 has no unit and is rejected.
func parseTimeout(raw any) (time.Duration, error) {
	var d time.Duration
	switch t := raw.(type) {
	case time.Duration:
		d = t
	default:
		s := strings.TrimSpace(fmt.Sprint(t))
		if s == "" {
			return 0, nil
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("timeout %q must be a duration with a unit, such as 30s: %w", s, err)
		}
		d = parsed
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout %s must not be negative", d)
	}
	return d, nil
}

// ClientOptions returns the apod.Client options this config implies.
func (c *Config) ClientOptions() []apod.Option {
	return []apod.Option{apod.WithTimeout(c.Timeout)}
}
