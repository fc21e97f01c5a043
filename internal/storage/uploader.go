package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Uploader stores a file's bytes somewhere public and returns the URL
// under which they can be fetched.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// DiskUploader writes files into a local directory that the server
// exposes under /uploads. Stands in for a real object store behind the
// same interface.
type DiskUploader struct {
	Dir     string
	BaseURL string
}

func NewDiskUploader(dir, baseURL string) (*DiskUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskUploader{Dir: dir, BaseURL: baseURL}, nil
}

func (u *DiskUploader) Upload(_ context.Context, data []byte, filename string) (string, error) {
	// Random prefix keeps two users' "resume.pdf" from colliding.
	name := uuid.New().String() + "-" + filepath.Base(filename)
	if err := os.WriteFile(filepath.Join(u.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return u.BaseURL + "/uploads/" + name, nil
}
