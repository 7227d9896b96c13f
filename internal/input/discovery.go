package input

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"weles-ai/internal/model"
)

// DiscoverStories turns markdown files into file stories. Directories are
// walked and every .md file below them is taken.
func DiscoverStories(inputs []string) ([]model.Story, error) {
	var out []model.Story
	seen := map[string]struct{}{}
	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if _, exists := seen[abs]; exists {
			return nil
		}
		seen[abs] = struct{}{}
		s, err := fileStory(path)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	}
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := add(in); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.WalkDir(in, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isMarkdown(path) {
				return nil
			}
			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}
	if len(inputs) > 0 && len(out) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", strings.Join(inputs, ", "))
	}
	return out, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func fileStory(path string) (model.FileStory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.FileStory{}, err
	}
	base := filepath.Base(path)
	return model.FileStory{
		Name:      strings.TrimSuffix(base, filepath.Ext(base)),
		DataURL:   DataURL(model.MediaTypeMarkdown, b),
		MediaType: model.MediaTypeMarkdown,
		FileName:  base,
	}, nil
}

// DataURL encodes b as a base64 data URL.
func DataURL(mediaType string, b []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(b)
}
