// Package storage persists ticket and reply attachments on the local
// filesystem under random names so uploads cannot collide or traverse paths.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type AttachmentStore struct {
	baseDir string
}

func NewAttachmentStore(baseDir string) (*AttachmentStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}
	return &AttachmentStore{baseDir: baseDir}, nil
}

// Save writes the uploaded file under a generated name and returns the
// relative path to persist with the owning record.
func (s *AttachmentStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dstPath := filepath.Join(s.baseDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}

	return name, nil
}

// Open returns the absolute path of a stored attachment, rejecting names that
// escape the base directory.
func (s *AttachmentStore) Open(name string) (string, error) {
	if filepath.Base(name) != name {
		return "", fmt.Errorf("invalid attachment name: %s", name)
	}

	path := filepath.Join(s.baseDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("attachment not found: %w", err)
	}
	return path, nil
}

// Delete removes a stored attachment. A missing file is not an error so
// cleanup stays idempotent.
func (s *AttachmentStore) Delete(name string) error {
	if name == "" {
		return nil
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid attachment name: %s", name)
	}

	if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
