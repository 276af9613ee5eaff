package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where submission attachments live. Paths are
// relative to the store root, e.g. "uploads/resumes/169...-ab12cd.pdf".
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error

	// Open retrieves a file and its size from the given path.
	Open(ctx context.Context, path string) (io.ReadCloser, int64, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local or minio
	BasePath  string // root directory for local storage
	Endpoint  string // for minio
	AccessKey string // for minio
	SecretKey string // for minio
	Bucket    string // for minio
	UseSSL    bool   // for minio
}

// New creates a storage backend from configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "minio":
		return NewMinioStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
