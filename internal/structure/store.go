package structure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrMissingIndex is returned by Load when no structure index exists.
var ErrMissingIndex = errors.New("structure index not found")

// Store persists a Map as indented JSON.
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store over fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Save writes m to path with 2-space indentation, replacing any existing file.
func (s *Store) Save(m *Map, path string) error {
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("failed to encode structure index: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write structure index %s: %w", path, err)
	}
	return nil
}

// Load reads the index at path. A missing file yields an error wrapping
// ErrMissingIndex.
func (s *Store) Load(path string) (*Map, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingIndex, path)
		}
		return nil, fmt.Errorf("failed to read structure index %s: %w", path, err)
	}

	m := NewMap()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse structure index %s: %w", path, err)
	}
	return m, nil
}

// Encode renders m as 2-space indented JSON without a trailing newline.
// HTML characters in file names are written as-is.
func Encode(m *Map) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
