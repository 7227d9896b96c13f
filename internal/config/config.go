package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"weles-ai/internal/client"
	"weles-ai/internal/util"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	TLS    TLSConfig    `yaml:"tls"`
	Run    RunConfig    `yaml:"run"`
}

type ServerConfig struct {
	BaseURL string `yaml:"base_url"`
}

type TLSConfig struct {
	SSLMode string `yaml:"ssl_mode"`
	CAFile  string `yaml:"ca_file"`
}

type RunConfig struct {
	PollIntervalMs    int `yaml:"poll_interval_ms"`
	PollTimeoutSecond int `yaml:"poll_timeout_second"`
	StatusConcurrency int `yaml:"status_concurrency"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{BaseURL: client.DefaultBaseURL},
		TLS:    TLSConfig{SSLMode: string(client.SSLModeStrict)},
		Run:    RunConfig{PollIntervalMs: 5000, PollTimeoutSecond: 1800, StatusConcurrency: 4},
	}
}

func ResolvePath(input string) (string, error) {
	if input != "" {
		return input, nil
	}
	return util.DefaultConfigPath()
}

// LoadOrInit reads the config file, writing the defaults first when it does
// not exist yet. Zero values in the file fall back to the defaults.
func LoadOrInit(path string) (Config, error) {
	def := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := Save(path, def); err != nil {
			return Config{}, err
		}
		return def, nil
	}
	cfg := def
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = def.Server.BaseURL
	}
	if cfg.TLS.SSLMode == "" {
		cfg.TLS.SSLMode = def.TLS.SSLMode
	}
	if cfg.Run.PollIntervalMs <= 0 {
		cfg.Run.PollIntervalMs = def.Run.PollIntervalMs
	}
	if cfg.Run.PollTimeoutSecond <= 0 {
		cfg.Run.PollTimeoutSecond = def.Run.PollTimeoutSecond
	}
	if cfg.Run.StatusConcurrency <= 0 {
		cfg.Run.StatusConcurrency = def.Run.StatusConcurrency
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
