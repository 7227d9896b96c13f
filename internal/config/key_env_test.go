package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAPIKey_NotConfigured(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := LoadAPIKey()
	if !errors.Is(err, ErrAPIKeyNotConfigured) {
		t.Fatalf("err=%v, want ErrAPIKeyNotConfigured", err)
	}
}

func TestSaveAndLoadAPIKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := SaveAPIKey("  abc123  "); err != nil {
		t.Fatalf("SaveAPIKey error: %v", err)
	}
	got, err := LoadAPIKey()
	if err != nil {
		t.Fatalf("LoadAPIKey error: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("got=%q want=%q", got, "abc123")
	}

	p := filepath.Join(home, ".weles-ai", ".env")
	st, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat .env error: %v", err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("mode=%v want 0600", st.Mode().Perm())
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read .env error: %v", err)
	}
	if !strings.Contains(string(b), `WELES_AI_API_KEY="abc123"`) {
		t.Fatalf(".env content unexpected: %s", string(b))
	}
}

func TestSaveAPIKey_ReplaceExisting(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	envPath := filepath.Join(home, ".weles-ai", ".env")
	if err := os.MkdirAll(filepath.Dir(envPath), 0o755); err != nil {
		t.Fatal(err)
	}
	orig := "# comment\nA=one\nWELES_AI_API_KEY=old\nB=two\n"
	if err := os.WriteFile(envPath, []byte(orig), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := SaveAPIKey("new-key"); err != nil {
		t.Fatalf("SaveAPIKey error: %v", err)
	}
	got, err := os.ReadFile(envPath)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	if !strings.Contains(s, `WELES_AI_API_KEY="new-key"`) {
		t.Fatalf("missing updated key: %s", s)
	}
	if strings.Contains(s, "old") {
		t.Fatalf("old key still exists: %s", s)
	}
	if !strings.Contains(s, `A="one"`) || !strings.Contains(s, `B="two"`) {
		t.Fatalf("other variables lost: %s", s)
	}
	if !strings.HasSuffix(s, "\n") {
		t.Fatalf("expected trailing newline: %q", s)
	}
}

func TestSaveAPIKey_RejectsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := SaveAPIKey("   "); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestLoadAPIKey_QuotedAndEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	envPath := filepath.Join(home, ".weles-ai", ".env")
	if err := os.MkdirAll(filepath.Dir(envPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(envPath, []byte("WELES_AI_API_KEY='quoted'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadAPIKey()
	if err != nil {
		t.Fatalf("LoadAPIKey error: %v", err)
	}
	if got != "quoted" {
		t.Fatalf("got=%q want=quoted", got)
	}

	if err := os.WriteFile(envPath, []byte("WELES_AI_API_KEY=\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadAPIKey()
	if !errors.Is(err, ErrAPIKeyNotConfigured) {
		t.Fatalf("err=%v, want ErrAPIKeyNotConfigured", err)
	}
}
