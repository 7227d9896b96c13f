package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSetKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := RunSetKey(context.Background(), "new-key"); err != nil {
		t.Fatalf("RunSetKey error: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(home, ".weles-ai", ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `WELES_AI_API_KEY="new-key"`) {
		t.Fatalf("unexpected env content: %s", string(b))
	}
}
