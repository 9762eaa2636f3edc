// Package storage provides the attachment store: file persistence for time
// entry attachments, keyed by stored filename.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore abstracts attachment file persistence so services stay
// independent of the disk layout.
type FileStore interface {
	// Save writes the content under the given stored name and returns the
	// full path the file was written to.
	Save(name string, content io.Reader) (string, error)
	// Remove deletes the file at path. Removing a missing file is not an
	// error: the row is the source of truth, the file is best effort.
	Remove(path string) error
}

// LocalFileStore stores attachments on the local filesystem under a base
// directory.
type LocalFileStore struct {
	baseDir string
}

// NewLocalFileStore creates the base directory if needed.
func NewLocalFileStore(baseDir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &LocalFileStore{baseDir: baseDir}, nil
}

func (s *LocalFileStore) Save(name string, content io.Reader) (string, error) {
	path := filepath.Join(s.baseDir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}
	return path, nil
}

func (s *LocalFileStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove attachment file %s: %w", path, err)
	}
	return nil
}
