// Package config loads and validates the backend configuration from a YAML
// file and COMMANDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Scryfall ScryfallConfig `mapstructure:"scryfall"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gt=0,lte=65535"`

	// Inbound global token bucket. Protects the upstream pacing gate from
	// unbounded queue growth under load.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=1"`
}

// ScryfallConfig configures the fetch client.
type ScryfallConfig struct {
	BaseURL               string `mapstructure:"base_url" validate:"required,url"`
	UserAgent             string `mapstructure:"user_agent" validate:"required"`
	RateLimitDelayMS      int    `mapstructure:"rate_limit_delay_ms" validate:"gte=0"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}

// Delay returns the pacing delay as a duration.
func (c ScryfallConfig) Delay() time.Duration {
	return time.Duration(c.RateLimitDelayMS) * time.Millisecond
}

// Timeout returns the per-request timeout as a duration.
func (c ScryfallConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Pretty bool   `mapstructure:"pretty"`
}

// Loader reads configuration via viper and validates the result.
type Loader struct {
	viper     *viper.Viper
	validator *validator.Validate
}

// NewLoader creates a loader. If configFile is empty, config.yaml is looked
// up in the working directory and $HOME/.config/commander-api.
func NewLoader(configFile string) *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/commander-api")
	}

	v.SetEnvPrefix("COMMANDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{
		viper:     v,
		validator: validator.New(),
	}
}

// Load reads, defaults, and validates the configuration. A missing config
// file is not an error; defaults and environment variables apply.
func (l *Loader) Load() (*Config, error) {
	v := l.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.requests_per_second", 10)
	v.SetDefault("server.burst", 20)
	v.SetDefault("scryfall.base_url", "https://api.scryfall.com")
	v.SetDefault("scryfall.user_agent", "mtg-commander-app/1.0")
	v.SetDefault("scryfall.rate_limit_delay_ms", 100)
	v.SetDefault("scryfall.request_timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := l.validator.Struct(&cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, ve := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q validation", ve.Namespace(), ve.Tag()))
			}
			return nil, fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &cfg, nil
}
