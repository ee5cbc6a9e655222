// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultProjectCategory is assigned when a project is created without a
// category.
const DefaultProjectCategory = "Project"

// Project is a single portfolio entry.
//
// The video reference is set once at creation and is never replaced by a
// metadata edit. The thumbnail is optional.
type Project struct {
	// ID is the server-assigned identifier (UUIDv7 string).
	ID string `json:"id"`

	// Title is required and must be non-empty after trimming.
	Title string `json:"title"`

	// Description is free text and may be empty.
	Description string `json:"description"`

	// Category is free text; defaults to [DefaultProjectCategory].
	Category string `json:"category"`

	// VideoKey is the media storage key of the project video.
	VideoKey string `json:"-"`

	// ThumbnailKey is the media storage key of the optional thumbnail.
	// Empty when no thumbnail was uploaded.
	ThumbnailKey string `json:"-"`

	// CreatedAt is set by the server when the project is stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Project.
func (p Project) TableName() string {
	return "projects"
}

// ProjectMetadata is the editable part of a project. It is the only payload
// accepted by the metadata update path.
type ProjectMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ProjectSummary is the list view of a project. It carries the thumbnail
// reference but never the video.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Thumbnail   string    `json:"thumbnail"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectDetail is the single-project view. VideoURL is a dereferenceable
// reference to the stored video.
type ProjectDetail struct {
	ProjectSummary
	VideoURL string `json:"video_url"`
}

// Metadata returns the editable fields of p.
func (p Project) Metadata() ProjectMetadata {
	return ProjectMetadata{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
	}
}

// Summary converts p into its list view, resolving the thumbnail key with
// mediaURL.
func (p Project) Summary(mediaURL func(key string) string) ProjectSummary {
	summary := ProjectSummary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailKey != "" {
		summary.Thumbnail = mediaURL(p.ThumbnailKey)
	}
	return summary
}

// Detail converts p into its detail view.
func (p Project) Detail(mediaURL func(key string) string) ProjectDetail {
	return ProjectDetail{
		ProjectSummary: p.Summary(mediaURL),
		VideoURL:       mediaURL(p.VideoKey),
	}
}
