package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dpshade/prompt-workbench/internal/errors"
)

// ListPromptFiles lists every file under the template directory (any
// extension), as slash-separated paths relative to it. Hidden files and
// directories are excluded. Root-level files sort before nested ones so the
// common case reads first in a picker.
func (w *Workspace) ListPromptFiles() ([]string, error) {
	dir := w.TemplateDir()

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.ReadError(dir, err)
	}

	sort.Slice(files, func(i, j int) bool {
		di, dj := 0, 0
		if strings.Contains(files[i], "/") {
			di = 1
		}
		if strings.Contains(files[j], "/") {
			dj = 1
		}
		if di != dj {
			return di < dj
		}
		return files[i] < files[j]
	})
	return files, nil
}

// ReadPromptFile returns the content of a file relative to the template
// directory.
func (w *Workspace) ReadPromptFile(rel string) (string, error) {
	path := filepath.Join(w.TemplateDir(), rel)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.FileNotFound(path)
		}
		return "", errors.ReadError(path, err)
	}
	return string(content), nil
}

// ReadFile returns the content of a file relative to the workspace root.
func (w *Workspace) ReadFile(rel string) (string, error) {
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, rel)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.FileNotFound(path)
		}
		return "", errors.ReadError(path, err)
	}
	return string(content), nil
}
