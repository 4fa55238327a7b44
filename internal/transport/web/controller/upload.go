package controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
)

// maxImageUploadBytes caps image uploads at 5 MiB.
const maxImageUploadBytes = 5 << 20

// imageFromRequest extracts the "image" part of a multipart upload. The
// caller owns closing the returned file.
func imageFromRequest(r *http.Request) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		return nil, "", fmt.Errorf("parsing multipart form: %w", err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", errors.New("missing image form field")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		_ = file.Close()
		return nil, "", errors.New("missing image content type")
	}

	return file, contentType, nil
}
