package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/google/uuid"
)

func init() {
	// not every system ships a mime.types with video entries
	for ext, typ := range map[string]string{
		".mp4":  "video/mp4",
		".m4v":  "video/x-m4v",
		".mov":  "video/quicktime",
		".webm": "video/webm",
	} {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// fileMediaStorage keeps blobs as flat files under a root directory.
type fileMediaStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileMediaStorage creates the root directory when missing and returns a
// [MediaStorage] writing into it.
func NewFileMediaStorage(dir string, logger *logger.Logger) (MediaStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating media directory %s: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file media storage")
	return &fileMediaStorage{dir: dir, logger: logger}, nil
}

// Save writes content to a temp file while hashing it, fsyncs and renames
// the file into place. The temp file is removed on any failure.
func (f *fileMediaStorage) Save(ctx context.Context, name, contentType string, content io.Reader) (models.StoredMedia, error) {
	log := logger.FromContext(ctx)

	key := newMediaKey(name, contentType)
	fullPath := filepath.Join(f.dir, key)
	tmpPath := fullPath + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return models.StoredMedia{}, fmt.Errorf("error creating temp file: %w", err)
	}

	hasher := sha256.New()
	size, err := io.Copy(file, io.TeeReader(content, hasher))
	if err == nil {
		err = file.Sync()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, fullPath)
	}
	if err != nil {
		os.Remove(tmpPath)
		log.Err(err).Str("func", "fileMediaStorage.Save").Str("key", key).Msg("failed to store media")
		return models.StoredMedia{}, fmt.Errorf("error writing media %s: %w", key, err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return models.StoredMedia{}, fmt.Errorf("error reading media info %s: %w", key, err)
	}

	return models.StoredMedia{
		Key:         key,
		ContentType: contentType,
		Size:        size,
		SHA256:      hex.EncodeToString(hasher.Sum(nil)),
		ModifiedAt:  info.ModTime(),
	}, nil
}

func (f *fileMediaStorage) Open(_ context.Context, key string) (MediaObject, error) {
	if err := checkMediaKey(key); err != nil {
		return MediaObject{}, err
	}

	file, err := os.Open(filepath.Join(f.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return MediaObject{}, ErrMediaNotFound
	}
	if err != nil {
		return MediaObject{}, fmt.Errorf("error opening media %s: %w", key, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return MediaObject{}, fmt.Errorf("error reading media info %s: %w", key, err)
	}

	return MediaObject{
		StoredMedia: models.StoredMedia{
			Key:         key,
			ContentType: contentTypeFromKey(key),
			Size:        info.Size(),
			ModifiedAt:  info.ModTime(),
		},
		Body: file,
	}, nil
}

func (f *fileMediaStorage) Delete(ctx context.Context, key string) error {
	if err := checkMediaKey(key); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(f.dir, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "fileMediaStorage.Delete").Str("key", key).Msg("failed to delete media")
		return fmt.Errorf("error deleting media %s: %w", key, err)
	}
	return nil
}

func (f *fileMediaStorage) List(_ context.Context) ([]models.StoredMedia, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing media directory: %w", err)
	}

	out := make([]models.StoredMedia, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".tmp") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		out = append(out, models.StoredMedia{
			Key:         entry.Name(),
			ContentType: contentTypeFromKey(entry.Name()),
			Size:        info.Size(),
			ModifiedAt:  info.ModTime(),
		})
	}

	return out, nil
}

// preferredExt pins the extension for common upload types; the system
// mime table may list several.
var preferredExt = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
}

// newMediaKey returns "<uuid><ext>". The extension always agrees with the
// validated content type: the original name's extension is kept only when
// it maps back to that type, otherwise it is derived from the type itself.
// A type with no known extension yields a bare uuid.
func newMediaKey(name, contentType string) string {
	return uuid.NewString() + mediaExt(name, contentType)
}

func mediaExt(name, contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if isSafeExt(ext) && baseType(mime.TypeByExtension(ext)) == mediaType {
		return ext
	}

	if ext, ok := preferredExt[mediaType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

func baseType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

func isSafeExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func checkMediaKey(key string) error {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) || strings.HasSuffix(key, ".tmp") {
		return ErrInvalidMediaKey
	}
	return nil
}

// contentTypeFromKey serves only image and video types; anything else,
// including keys stored before extensions were tied to the validated type,
// goes out as an opaque download.
func contentTypeFromKey(key string) string {
	ct := mime.TypeByExtension(filepath.Ext(key))
	if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") {
		return ct
	}
	return "application/octet-stream"
}
