package validators

import (
	"context"
	"net/mail"
	"net/url"
	"strings"

	"github.com/MKhiriev/rexora-cms/models"
)

// Field names accepted by [ContentValidator] for SiteSettings.
const (
	FieldServices     = "services"
	FieldContactEmail = "contact_email"
	FieldInstagramURL = "instagram_url"
)

// ContentValidator validates every CMS payload: project metadata, upload
// candidates, the settings document and reviews.
type ContentValidator struct{}

func NewContentValidator() Validator {
	return &ContentValidator{}
}

func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProjectMetadata:
		return v.validateProjectMetadata(value)
	case *models.ProjectMetadata:
		return v.validateProjectMetadata(*value)

	case models.MediaFile:
		return ValidateMedia(value.Kind, value.ContentType, value.Size)
	case *models.MediaFile:
		return ValidateMedia(value.Kind, value.ContentType, value.Size)

	case models.SiteSettings:
		return v.validateSiteSettings(value, fields...)
	case *models.SiteSettings:
		return v.validateSiteSettings(*value, fields...)

	case models.ReviewInput:
		return v.validateReviewInput(value)
	case *models.ReviewInput:
		return v.validateReviewInput(*value)

	case models.ReviewUpdate:
		return v.validateReviewUpdate(value)
	case *models.ReviewUpdate:
		return v.validateReviewUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateProjectMetadata(meta models.ProjectMetadata) error {
	if strings.TrimSpace(meta.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func (v *ContentValidator) validateSiteSettings(s models.SiteSettings, fields ...string) error {
	if len(fields) == 0 {
		if s.IsEmpty() {
			return ErrNoDataToUpdate
		}
		fields = []string{FieldServices, FieldContactEmail, FieldInstagramURL}
	}

	for _, field := range fields {
		switch field {
		case FieldServices:
			for _, svc := range s.Services {
				if !svc.Icon.Valid() {
					return ErrInvalidIcon
				}
			}
		case FieldContactEmail:
			if s.ContactEmail == "" {
				continue
			}
			if _, err := mail.ParseAddress(s.ContactEmail); err != nil {
				return ErrInvalidEmail
			}
		case FieldInstagramURL:
			if s.InstagramURL == "" {
				continue
			}
			u, err := url.Parse(s.InstagramURL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateReviewInput(in models.ReviewInput) error {
	if strings.TrimSpace(in.ClientName) == "" {
		return ErrEmptyClientName
	}
	if strings.TrimSpace(in.ReviewText) == "" {
		return ErrEmptyReviewText
	}
	return validateRating(in.StarRating)
}

func (v *ContentValidator) validateReviewUpdate(u models.ReviewUpdate) error {
	if u.IsEmpty() {
		return ErrNoDataToUpdate
	}
	if u.ClientName != nil && strings.TrimSpace(*u.ClientName) == "" {
		return ErrEmptyClientName
	}
	if u.ReviewText != nil && strings.TrimSpace(*u.ReviewText) == "" {
		return ErrEmptyReviewText
	}
	if u.StarRating != nil {
		return validateRating(*u.StarRating)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < models.MinStarRating || rating > models.MaxStarRating {
		return ErrInvalidRating
	}
	return nil
}
