package utils

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/rexora-cms/models"
)

// ErrNotARegularFile is returned by [OpenMediaFile] for directories and
// other non-regular paths.
var ErrNotARegularFile = errors.New("not a regular file")

// sniffLen is the number of bytes http.DetectContentType looks at.
const sniffLen = 512

// OpenMediaFile opens the file at path as an upload candidate of the given
// kind. The content type comes from the file extension and falls back to
// content sniffing. The returned closer must be closed once the upload is
// done.
func OpenMediaFile(path string, kind models.MediaKind) (models.MediaFile, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.MediaFile{}, nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return models.MediaFile{}, nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return models.MediaFile{}, nil, fmt.Errorf("%s: %w", path, ErrNotARegularFile)
	}

	contentType, err := detectContentType(f, path)
	if err != nil {
		_ = f.Close()
		return models.MediaFile{}, nil, err
	}

	return models.MediaFile{
		Kind:        kind,
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Content:     f,
	}, f, nil
}

func detectContentType(f *os.File, path string) (string, error) {
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt, nil
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("error rewinding %s: %w", path, err)
	}

	return http.DetectContentType(head[:n]), nil
}
