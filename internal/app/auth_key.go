package app

import (
	"fmt"

	"weles-ai/internal/config"
)

func missingKeyError() error {
	return fmt.Errorf("%w: pass --api-key, set %s, or run\nweles-ai set key <api-key>", config.ErrAPIKeyNotConfigured, config.APIKeyEnvName)
}
