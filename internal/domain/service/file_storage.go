package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for binary file storage used by profile
// image uploads. Two implementations exist: a remote bucket ("online") that
// yields a URL, and a local directory ("local") that yields a filesystem path.
type FileStorage interface {
	// Save writes the file content under the given key and returns the
	// location of the stored object (a URL for remote storage, a path for
	// local storage).
	Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
}

// FileStorages groups the configured storage backends by upload flag. Online
// may be nil when no bucket is configured.
type FileStorages struct {
	Online FileStorage
	Local  FileStorage
}
