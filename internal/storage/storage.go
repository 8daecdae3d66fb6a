// Package storage guarda as fotos de perfil em disco local ou num bucket S3.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("file not found")

type PhotoStore interface {
	// Prepare garante que o destino existe (pasta de upload, bucket).
	Prepare(ctx context.Context) error
	Save(ctx context.Context, name string, content io.Reader, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}
