package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes artifacts to a directory that the HTTP layer serves
// under /audio. This is the default store; GCS is the hosted alternative.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Dir is where artifacts land; main mounts it as a static route.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(objectName))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return "/audio/" + filepath.Base(objectName), nil
}
