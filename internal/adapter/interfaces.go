// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Rexora CMS server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the REST API. The package ships an HTTP implementation built
// on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinels defined in
// errors.go, wrapped together with the server's "detail" message, so callers
// can use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/rexora-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the CMS REST API. Privileged
// calls carry the bearer token set with SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all privileged requests.
	// An empty token removes it.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string

	// Login posts the admin credentials and returns the issued token. The
	// adapter does not keep it; the session service decides.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Verify checks the given token against GET /admin/verify.
	Verify(ctx context.Context, token string) (models.VerifyResponse, error)

	// GetStats returns the dashboard counters.
	GetStats(ctx context.Context) (models.DashboardStats, error)

	ListProjects(ctx context.Context) ([]models.ProjectSummary, error)
	GetProject(ctx context.Context, id string) (models.ProjectDetail, error)

	// CreateProject sends a multipart request with the metadata fields, the
	// video and the optional thumbnail.
	CreateProject(ctx context.Context, meta models.ProjectMetadata, video models.MediaFile, thumbnail *models.MediaFile) (models.ProjectSummary, error)

	// UpdateProject sends the metadata as JSON. Media is never sent.
	UpdateProject(ctx context.Context, id string, meta models.ProjectMetadata) error

	DeleteProject(ctx context.Context, id string) error

	// GetSiteSettings returns the document with Version read from the ETag
	// header.
	GetSiteSettings(ctx context.Context) (models.SiteSettings, error)

	// UpdateSiteSettings replaces the document. A positive s.Version is sent
	// as If-Match. The returned value is the new version.
	UpdateSiteSettings(ctx context.Context, s models.SiteSettings) (int64, error)

	// UploadLogo stores a logo and returns its reference.
	UploadLogo(ctx context.Context, logo models.MediaFile) (models.LogoResponse, error)

	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error)
	UpdateReview(ctx context.Context, id string, u models.ReviewUpdate) (models.Review, error)
	DeleteReview(ctx context.Context, id string) error

	// Version returns the server build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)

	// ResolveURL turns a server reference such as "/api/media/<key>" into an
	// absolute URL.
	ResolveURL(ref string) string
}
