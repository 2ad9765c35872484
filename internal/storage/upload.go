// Package storage implements the attachment relay: uploaded photo bytes go
// to the local uploads directory under a timestamp-prefixed name, and the
// generated name is what the issue record keeps as its image reference.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// UploadStore writes attachments to a directory on disk.
type UploadStore struct {
	dir string
}

// NewUploadStore ensures the directory exists and returns the store.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the uploads directory, used for static serving.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save writes the attachment under "<unix-millis>_<original-base-name>" and
// returns the generated name. Collision avoidance relies on the millisecond
// timestamp prefix; the original name is kept so stored files stay
// recognizable and upload paths stay compatible with existing clients.
func (s *UploadStore) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}
