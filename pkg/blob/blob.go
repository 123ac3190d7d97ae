// Package blob stores uploaded photos on the local filesystem and hands back
// an opaque reference path. Records keep the reference only, never the bytes.
package blob

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Store struct{ dir string }

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes the photo under a uuid-prefixed name so uploads with the same
// filename never clobber each other.
func (s *Store) Save(filename string, data []byte) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}
	return path, nil
}
