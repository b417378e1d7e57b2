package orggraph

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the externally-supplied client settings. Values come from a
// yaml file, the environment, or both (environment wins).
type Config struct {
	Endpoint  string        `yaml:"endpoint"   env:"ORGGRAPH_ENDPOINT"   env-required:"true"`
	AuthToken string        `yaml:"auth_token" env:"ORGGRAPH_AUTH_TOKEN"`
	Timeout   time.Duration `yaml:"timeout"    env:"ORGGRAPH_TIMEOUT"    env-default:"30s"`
}

// LoadConfig reads the configuration from the given yaml file plus the
// environment. An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// NewClientFromConfig builds a client with its own pooled HTTP client. The
// configured timeout bounds every call; callers can tighten individual
// calls further through their context.
func NewClientFromConfig(cfg *Config) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	c := NewClient(cfg.Endpoint, httpClient)
	if cfg.AuthToken != "" {
		token := cfg.AuthToken
		c = c.WithRequestModifier(func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
	}
	return c
}
