package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable is returned by callers when no media host is configured.
var ErrUnavailable = errors.New("photo storage is not configured")

// UploadResult identifies a stored file.
type UploadResult struct {
	PublicID string
	URL      string
}

// StorageService defines the interface for storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, destFolder string) (UploadResult, error)
	DeleteFile(ctx context.Context, publicID string) error
}
