package app

import (
	"context"

	"weles-ai/internal/config"
)

func RunSetKey(_ context.Context, key string) error {
	return config.SaveAPIKey(key)
}
