package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

const (
	BaseURLEnvName = "WELES_AI_BASE_URL"
	SSLModeEnvName = "WELES_AI_SSL_MODE"
)

// Overrides are the values given on the command line.
type Overrides struct {
	ConfigPath string
	APIKey     string
	BaseURL    string
	SSLMode    string
}

type Settings struct {
	APIKey            string
	BaseURL           string
	SSLMode           string
	CAFile            string
	PollInterval      time.Duration
	PollTimeout       time.Duration
	StatusConcurrency int
}

// Resolve merges flags, environment, the .env key store and the config file,
// in that order of precedence. A missing API key is left empty for the
// caller to report.
func Resolve(o Overrides) (Settings, error) {
	path, err := ResolvePath(o.ConfigPath)
	if err != nil {
		return Settings{}, err
	}
	cfg, err := LoadOrInit(path)
	if err != nil {
		return Settings{}, err
	}

	key := firstNonEmpty(o.APIKey, os.Getenv(APIKeyEnvName))
	if key == "" {
		stored, err := LoadAPIKey()
		if err != nil && !errors.Is(err, ErrAPIKeyNotConfigured) {
			return Settings{}, err
		}
		key = stored
	}

	return Settings{
		APIKey:            key,
		BaseURL:           firstNonEmpty(o.BaseURL, os.Getenv(BaseURLEnvName), cfg.Server.BaseURL),
		SSLMode:           firstNonEmpty(o.SSLMode, os.Getenv(SSLModeEnvName), cfg.TLS.SSLMode),
		CAFile:            cfg.TLS.CAFile,
		PollInterval:      time.Duration(cfg.Run.PollIntervalMs) * time.Millisecond,
		PollTimeout:       time.Duration(cfg.Run.PollTimeoutSecond) * time.Second,
		StatusConcurrency: cfg.Run.StatusConcurrency,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
