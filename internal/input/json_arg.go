package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ReadJSONArg returns the raw JSON behind a flag value: the contents of the
// file it names when such a file exists, otherwise the value itself.
func ReadJSONArg(raw, label string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("missing --%s: provide JSON or a path to a JSON file", label)
	}
	if info, err := os.Stat(s); err == nil && info.Mode().IsRegular() {
		b, err := os.ReadFile(s)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", label, err)
		}
		return b, nil
	}
	return []byte(s), nil
}

// LoadJSON decodes a flag value into v. An empty optional value leaves v
// untouched.
func LoadJSON(raw, label string, required bool, v any) error {
	if strings.TrimSpace(raw) == "" && !required {
		return nil
	}
	b, err := ReadJSONArg(raw, label)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("--%s: invalid JSON: %w", label, err)
	}
	return nil
}
