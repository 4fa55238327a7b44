package localdisk

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// Store writes uploaded images to a directory on disk and returns URLs
// under a configured public base URL. It stands in for a hosted object
// store behind the same interface.
type Store struct {
	baseDir string
	baseURL string
}

var _ datasources.ImageStore = (*Store)(nil)

func New(baseDir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}
	return &Store{baseDir: baseDir, baseURL: baseURL}, nil
}

var extensionsByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ErrUnsupportedImageType is returned for content types outside the
// accepted image formats.
var ErrUnsupportedImageType = fmt.Errorf("unsupported image content type")

func (s *Store) StoreImage(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	ext, ok := extensionsByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, contentType)
	}

	filename := key + ext
	path := filepath.Join(s.baseDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("writing image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing image file: %w", err)
	}

	imageURL, err := url.JoinPath(s.baseURL, filename)
	if err != nil {
		return "", fmt.Errorf("building image URL: %w", err)
	}
	return imageURL, nil
}
