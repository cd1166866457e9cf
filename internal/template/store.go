package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed all:templates
var templatesFS embed.FS

// ErrTemplateNotFound indicates a logical template path that is not part
// of the bundle.
var ErrTemplateNotFound = errors.New("template not found")

// Store is the read-only source of template bodies, addressed by logical
// path (e.g. "licenses/mit.stub"). An optional override directory is
// consulted before the embedded bundle, so template authors can shadow
// any stub without rebuilding.
type Store struct {
	overrideDir string
}

// NewStore creates a store backed by the embedded bundle only.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithOverrides creates a store that resolves logical paths
// against dir first. An empty dir behaves like NewStore.
func NewStoreWithOverrides(dir string) *Store {
	return &Store{overrideDir: dir}
}

// Read returns the raw template bytes for the given logical path.
func (s *Store) Read(logicalPath string) ([]byte, error) {
	if s.overrideDir != "" {
		override := filepath.Join(s.overrideDir, filepath.FromSlash(logicalPath))
		if content, err := os.ReadFile(override); err == nil {
			return content, nil
		}
	}

	content, err := templatesFS.ReadFile(path.Join("templates", logicalPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, logicalPath)
	}

	return content, nil
}

// Paths lists every logical path in the embedded bundle, sorted.
func (s *Store) Paths() ([]string, error) {
	var paths []string
	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, strings.TrimPrefix(p, "templates/"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk template bundle: %w", err)
	}
	return paths, nil
}
