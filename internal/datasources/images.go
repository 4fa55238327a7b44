package datasources

import (
	"context"
	"io"
)

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	StoreImage(ctx context.Context, key, contentType string, r io.Reader) (url string, err error)
}
