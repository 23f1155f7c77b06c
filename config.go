package fedavg

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

const (
	DefAggregatorURL   = "http://localhost:7072"
	DefTLSVerification = false
)

type Config struct {
	Aggregator AggregatorConfig `toml:"aggregator"`
}

type AggregatorConfig struct {
	URL             string `toml:"url"`
	TLSVerification bool   `toml:"tls_verification"`
}

func DefaultConfig() Config {
	return Config{
		Aggregator: AggregatorConfig{
			URL:             DefAggregatorURL,
			TLSVerification: DefTLSVerification,
		},
	}
}

// LoadConfig reads a TOML file. Missing values fall back to the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	tree, err := toml.Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	var cfg Config
	if err := tree.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.Aggregator.URL == "" {
		cfg.Aggregator.URL = DefAggregatorURL
	}

	return &cfg, nil
}
