package output

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func random8() (string, error) {
	b := make([]byte, 8)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

// PrintJSON writes raw indented, one document per call.
func PrintJSON(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("null")
	}
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// PrintValue marshals v and prints it like PrintJSON.
func PrintValue(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return PrintJSON(w, b)
}

// UniquePath returns a path in outDir for the deliverable named fileName
// that does not exist yet. Directory parts of fileName are dropped; on
// collision a random suffix goes before the extension.
func UniquePath(outDir, fileName string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + fileName))
	if base == "/" || base == "." {
		return "", errors.New("deliverable file name is empty")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	first := filepath.Join(outDir, base+".json")
	if _, err := os.Stat(first); errors.Is(err, os.ErrNotExist) {
		return first, nil
	}
	for i := 0; i < 100; i++ {
		s, err := random8()
		if err != nil {
			return "", err
		}
		p := filepath.Join(outDir, fmt.Sprintf("%s_%s.json", base, s))
		if _, err := os.Stat(p); err == nil {
			continue
		}
		return p, nil
	}
	return "", fmt.Errorf("could not find a free file name for %s in %s", base, outDir)
}

// WriteDeliverable stores a retrieved deliverable as indented JSON and
// returns the written path.
func WriteDeliverable(outDir, fileName string, raw []byte) (string, error) {
	p, err := UniquePath(outDir, strings.TrimSpace(fileName))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := PrintJSON(&buf, raw); err != nil {
		return "", err
	}
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write deliverable: %w", err)
	}
	return p, nil
}
