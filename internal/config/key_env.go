package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"weles-ai/internal/util"
)

const APIKeyEnvName = "WELES_AI_API_KEY"

var ErrAPIKeyNotConfigured = errors.New("api key is not configured")

// LoadAPIKey reads the key stored by SaveAPIKey in ~/.weles-ai/.env.
func LoadAPIKey() (string, error) {
	p, err := util.DefaultEnvPath()
	if err != nil {
		return "", err
	}
	env, err := godotenv.Read(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrAPIKeyNotConfigured
		}
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	key := strings.TrimSpace(env[APIKeyEnvName])
	if key == "" {
		return "", ErrAPIKeyNotConfigured
	}
	return key, nil
}

// SaveAPIKey stores the key, keeping any other variables in the file.
func SaveAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key must not be empty")
	}
	p, err := util.DefaultEnvPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	env, err := godotenv.Read(p)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read %s: %w", p, err)
		}
		env = map[string]string{}
	}
	env[APIKeyEnvName] = key
	if err := godotenv.Write(env, p); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return os.Chmod(p, 0o600)
}
