package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
)

// SSLMode selects how the server certificate is checked.
type SSLMode string

const (
	SSLModeStrict SSLMode = "strict"
	// SSLModeInsecure skips server identity verification.
	SSLModeInsecure SSLMode = "insecure"
)

var ErrInvalidSSLMode = errors.New("invalid ssl mode")

// ParseSSLMode maps an empty value to strict.
func ParseSSLMode(s string) (SSLMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SSLModeStrict):
		return SSLModeStrict, nil
	case string(SSLModeInsecure):
		return SSLModeInsecure, nil
	default:
		return "", fmt.Errorf("%w %q, want %s or %s", ErrInvalidSSLMode, s, SSLModeStrict, SSLModeInsecure)
	}
}

func newTLSConfig(mode SSLMode, caFile string) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if strings.TrimSpace(caFile) != "" {
		pem, err := os.ReadFile(caFile)
		if err != nil {
			return nil, fmt.Errorf("read ca file: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", caFile)
		}
		cfg.RootCAs = pool
	}
	if mode == SSLModeInsecure {
		cfg.InsecureSkipVerify = true
	}
	return cfg, nil
}
