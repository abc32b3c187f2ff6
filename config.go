package trellis

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/trellis-ml/trellis-go/client"
)

// Config holds environment-driven SDK settings.
type Config struct {
	BaseURL string        `envconfig:"TRELLIS_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"TRELLIS_API_KEY"`
	Timeout time.Duration `envconfig:"TRELLIS_TIMEOUT" default:"30s"`
}

// LoadConfig reads SDK settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment config: %w", err)
	}

	return cfg, nil
}

// FromEnv constructs an SDK from TRELLIS_* environment variables.
// Extra options are applied after the environment-derived ones, so
// they win on conflict.
func FromEnv(opts ...client.Option) (*SDK, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	base := []client.Option{
		client.WithBaseURL(cfg.BaseURL),
		client.WithTimeout(cfg.Timeout),
	}
	if cfg.APIKey != "" {
		base = append(base, client.WithToken(cfg.APIKey))
	}

	return New(append(base, opts...)...)
}
