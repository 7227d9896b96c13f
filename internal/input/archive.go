package input

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"weles-ai/internal/model"
)

// skipDirs are never packed when a directory is zipped.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
}

// ArchiveCodes turns each path into an archive code input. A .zip file is
// embedded as-is; a directory is zipped in memory first.
func ArchiveCodes(paths []string) ([]model.Code, error) {
	out := make([]model.Code, 0, len(paths))
	for _, p := range paths {
		c, err := archiveCode(p)
		if err != nil {
			return nil, fmt.Errorf("code %s: %w", p, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func archiveCode(path string) (model.ArchiveCode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.ArchiveCode{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.ArchiveCode{}, err
	}
	name := filepath.Base(abs)
	var b []byte
	switch {
	case info.IsDir():
		b, err = ZipDir(path)
		if err != nil {
			return model.ArchiveCode{}, err
		}
	case strings.EqualFold(filepath.Ext(path), ".zip"):
		b, err = os.ReadFile(path)
		if err != nil {
			return model.ArchiveCode{}, err
		}
		name = strings.TrimSuffix(name, filepath.Ext(name))
	default:
		return model.ArchiveCode{}, fmt.Errorf("expected a .zip file or a directory")
	}
	return model.ArchiveCode{
		Name:      name,
		DataURL:   DataURL(model.MediaTypeZip, b),
		MediaType: model.MediaTypeZip,
	}, nil
}

// ZipDir packs the regular files under root with slash-separated relative
// names.
func ZipDir(root string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(w, f)
		f.Close()
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
