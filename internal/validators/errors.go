package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrVideoRequired    = errors.New("video file is required")
	ErrUnknownMediaKind = errors.New("unknown media kind")
	ErrInvalidFileType  = errors.New("invalid file type")
	ErrFileTooLarge     = errors.New("file is too large")

	ErrNoDataToUpdate  = errors.New("no data to update")
	ErrInvalidIcon     = errors.New("invalid service icon")
	ErrInvalidEmail    = errors.New("invalid contact email")
	ErrInvalidURL      = errors.New("invalid instagram url")
	ErrEmptyClientName = errors.New("client name is required")
	ErrEmptyReviewText = errors.New("review text is required")
	ErrInvalidRating   = errors.New("star rating must be between 1 and 5")
)
