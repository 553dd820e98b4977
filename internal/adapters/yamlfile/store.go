// Package yamlfile keeps the acronym catalog in a single YAML file.
package yamlfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/corey/acro/internal/ports"
)

// Store implements ports.CatalogStore over one YAML file. Writes replace the
// whole file through a temp file and rename in the same directory.
type Store struct {
	path string
}

// NewStore returns a store for the catalog at path. The file need not exist.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the catalog file path.
func (s *Store) Path() string { return s.path }

// Load reads and decodes the catalog. A missing file is an empty catalog.
func (s *Store) Load() (ports.RawCatalog, error) {
	data, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	raw, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return raw, nil
}

// Save encodes cat and overwrites the catalog file.
func (s *Store) Save(cat *ports.Catalog) error {
	data, err := Encode(cat)
	if err != nil {
		return err
	}
	return s.WriteBytes(data)
}

// Bytes returns the file content as stored, or nil if the file does not exist.
func (s *Store) Bytes() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// WriteBytes atomically replaces the file content. The file mode of an
// existing catalog is kept.
func (s *Store) WriteBytes(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
