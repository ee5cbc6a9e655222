package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/MKhiriev/rexora-cms/internal/service"
	"github.com/MKhiriev/rexora-cms/models"
)

// multipartMemory is how much of a multipart body is kept in memory; the
// rest spills to temporary files.
const multipartMemory = 8 << 20

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// parseMultipart parses the upload form. The caller must call
// r.MultipartForm.RemoveAll when err is nil.
func parseMultipart(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

// formFile returns the uploaded file of field, or nil when the part is
// absent. The returned file must be closed with closeMediaFile.
func formFile(r *http.Request, field string) (*models.MediaFile, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", service.ErrInvalidDataProvided, field, err)
	}

	return &models.MediaFile{
		FileName:    header.Filename,
		ContentType: partContentType(header),
		Size:        header.Size,
		Content:     file,
	}, nil
}

func partContentType(header *multipart.FileHeader) string {
	ct := header.Header.Get("Content-Type")
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func closeMediaFile(f *models.MediaFile) {
	if f == nil {
		return
	}
	if c, ok := f.Content.(io.Closer); ok {
		c.Close()
	}
}
