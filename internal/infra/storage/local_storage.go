package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// localStorage stores files under a local directory and returns filesystem
// paths. Used for the "local" upload flag and in development.
type localStorage struct {
	dir string
}

func newLocalStorage(dir string) *localStorage {
	return &localStorage{dir: dir}
}

func (s *localStorage) Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	path := filepath.Join(s.dir, filepath.Clean("/"+key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()

		return "", errors.Wrap(err, "failed to write upload file")
	}
	if err := file.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close upload file")
	}

	return path, nil
}
