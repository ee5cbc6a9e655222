package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
)

// MediaError reports a rejected upload. Reason is [ErrInvalidFileType] or
// [ErrFileTooLarge]; Size and Limit are in bytes.
type MediaError struct {
	Kind        models.MediaKind
	ContentType string
	Size        int64
	Limit       int64
	Reason      error
}

func (e *MediaError) Error() string {
	noun := mediaNoun(e.Kind)

	if errors.Is(e.Reason, ErrInvalidFileType) {
		if e.Kind == models.MediaVideo {
			return "Invalid file type. Please upload a video file."
		}
		return fmt.Sprintf("Invalid %sfile type. Please upload an image file.", thumbnailPrefix(e.Kind))
	}

	msg := fmt.Sprintf("%s file is too large (%.2fMB). Maximum allowed size is %dMB.",
		noun, float64(e.Size)/float64(models.MB), e.Limit/models.MB)
	if e.Kind == models.MediaVideo {
		msg += " Please compress your video and try again."
	}
	return msg
}

func (e *MediaError) Unwrap() error {
	return e.Reason
}

// ValidateMedia checks the declared content type and the measured size of an
// upload against the rule of its kind. Size is checked first, so a file that
// is both too large and of the wrong type is reported as too large. The size
// check is size > limit.
func ValidateMedia(kind models.MediaKind, contentType string, size int64) error {
	rule, ok := kind.Rule()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMediaKind, kind)
	}

	if size > rule.MaxSize {
		return &MediaError{Kind: kind, ContentType: contentType, Size: size, Limit: rule.MaxSize, Reason: ErrFileTooLarge}
	}

	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), rule.MIMEPrefix) {
		return &MediaError{Kind: kind, ContentType: contentType, Size: size, Limit: rule.MaxSize, Reason: ErrInvalidFileType}
	}

	return nil
}

func mediaNoun(kind models.MediaKind) string {
	switch kind {
	case models.MediaVideo:
		return "Video"
	case models.MediaThumbnail:
		return "Thumbnail"
	case models.MediaLogo:
		return "Logo"
	default:
		return "Media"
	}
}

func thumbnailPrefix(kind models.MediaKind) string {
	if kind == models.MediaThumbnail {
		return "thumbnail "
	}
	return ""
}
