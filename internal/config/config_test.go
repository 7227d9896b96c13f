package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"weles-ai/internal/client"
)

func TestLoadOrInit_WritesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := LoadOrInit(p)
	if err != nil {
		t.Fatalf("LoadOrInit error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v want defaults", cfg)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(b), "base_url: "+client.DefaultBaseURL) {
		t.Fatalf("unexpected config content: %s", b)
	}
}

func TestLoadOrInit_FillsMissingValues(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  base_url: https://weles.local\ntls:\n  ca_file: /etc/ca.pem\nrun:\n  poll_interval_ms: 250\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOrInit(p)
	if err != nil {
		t.Fatalf("LoadOrInit error: %v", err)
	}
	def := Default()
	if cfg.Server.BaseURL != "https://weles.local" || cfg.TLS.CAFile != "/etc/ca.pem" || cfg.Run.PollIntervalMs != 250 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.TLS.SSLMode != def.TLS.SSLMode || cfg.Run.PollTimeoutSecond != def.Run.PollTimeoutSecond || cfg.Run.StatusConcurrency != def.Run.StatusConcurrency {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadOrInit_InvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("server: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrInit(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := ResolvePath("")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".weles-ai", "config.yaml") {
		t.Fatalf("got=%q", got)
	}
	got, err = ResolvePath("/tmp/x.yaml")
	if err != nil || got != "/tmp/x.yaml" {
		t.Fatalf("got=%q err=%v", got, err)
	}
}

func TestResolve_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(APIKeyEnvName, "")
	t.Setenv(BaseURLEnvName, "")
	t.Setenv(SSLModeEnvName, "")

	p := filepath.Join(home, "cfg.yaml")
	content := "server:\n  base_url: https://from-file\ntls:\n  ssl_mode: insecure\nrun:\n  poll_interval_ms: 100\n  poll_timeout_second: 7\n  status_concurrency: 3\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Resolve(Overrides{ConfigPath: p})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if s.APIKey != "" || s.BaseURL != "https://from-file" || s.SSLMode != "insecure" {
		t.Fatalf("file layer: %+v", s)
	}
	if s.PollInterval != 100*time.Millisecond || s.PollTimeout != 7*time.Second || s.StatusConcurrency != 3 {
		t.Fatalf("run settings: %+v", s)
	}

	if err := SaveAPIKey("stored"); err != nil {
		t.Fatal(err)
	}
	s, err = Resolve(Overrides{ConfigPath: p})
	if err != nil || s.APIKey != "stored" {
		t.Fatalf(".env layer: %+v err=%v", s, err)
	}

	t.Setenv(APIKeyEnvName, "env-key")
	t.Setenv(BaseURLEnvName, "https://from-env")
	t.Setenv(SSLModeEnvName, "strict")
	s, err = Resolve(Overrides{ConfigPath: p})
	if err != nil || s.APIKey != "env-key" || s.BaseURL != "https://from-env" || s.SSLMode != "strict" {
		t.Fatalf("env layer: %+v err=%v", s, err)
	}

	s, err = Resolve(Overrides{ConfigPath: p, APIKey: "flag-key", BaseURL: "https://from-flag", SSLMode: "insecure"})
	if err != nil || s.APIKey != "flag-key" || s.BaseURL != "https://from-flag" || s.SSLMode != "insecure" {
		t.Fatalf("flag layer: %+v err=%v", s, err)
	}
}
