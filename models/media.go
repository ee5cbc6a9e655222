// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"strings"
	"time"
)

// MB is the unit used by the media limits.
const MB int64 = 1024 * 1024

// MediaKind is the asset class of an uploaded file. Every kind has its own
// MIME prefix and size limit.
type MediaKind string

const (
	MediaVideo     MediaKind = "video"
	MediaThumbnail MediaKind = "thumbnail"
	MediaLogo      MediaKind = "logo"
)

// MediaRule describes what is accepted for a [MediaKind].
type MediaRule struct {
	// MIMEPrefix is the required prefix of the declared content type.
	MIMEPrefix string
	// MaxSize is the inclusive upper bound in bytes.
	MaxSize int64
}

var mediaRules = map[MediaKind]MediaRule{
	MediaVideo:     {MIMEPrefix: "video/", MaxSize: 10 * MB},
	MediaThumbnail: {MIMEPrefix: "image/", MaxSize: 5 * MB},
	MediaLogo:      {MIMEPrefix: "image/", MaxSize: 2 * MB},
}

// Rule returns the validation rule of k. ok is false for unknown kinds.
func (k MediaKind) Rule() (MediaRule, bool) {
	rule, ok := mediaRules[k]
	return rule, ok
}

func (k MediaKind) String() string {
	return string(k)
}

// MediaFile is an upload candidate: a named stream with its declared content
// type and measured size.
type MediaFile struct {
	Kind        MediaKind
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredMedia describes a blob persisted by a media storage.
type StoredMedia struct {
	// Key is the storage key; it is also the last segment of the public URL.
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	SHA256      string    `json:"sha256,omitempty"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// MediaURLPrefix is the path under which stored blobs are served.
const MediaURLPrefix = "/api/media/"

// MediaURL returns the public reference of the blob stored under key.
func MediaURL(key string) string {
	return MediaURLPrefix + key
}

// MediaKeyFromURL extracts the storage key from a reference produced by
// [MediaURL]. Absolute URLs are accepted as long as their path carries the
// prefix.
func MediaKeyFromURL(ref string) (string, bool) {
	i := strings.Index(ref, MediaURLPrefix)
	if i < 0 {
		return "", false
	}
	key := ref[i+len(MediaURLPrefix):]
	if key == "" || strings.ContainsAny(key, "/?#") {
		return "", false
	}
	return key, true
}
