package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP API listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	CatalogPath string       `yaml:"catalog_path"`
	TopN        int          `yaml:"top_n"`
	LogLevel    string       `yaml:"log_level"`
	Server      ServerConfig `yaml:"server"`
}

// Load reads a config from the given path. A missing file is not an
// error; defaults apply.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "courses.csv"
	}
	if cfg.TopN == 0 {
		cfg.TopN = 7
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
}
