package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	// origin is scheme://host of the API, used to resolve server references.
	origin string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.ServerURL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	u, _ := url.Parse(baseURL)

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		origin: u.Scheme + "://" + u.Host,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent privileged requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// authedRequest attaches the stored bearer token. Without a token the
// request is still sent and the server answers 401.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// Login implements [ServerAdapter]. POST /admin/login.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post("/admin/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if result.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: login response carries no token", ErrBadGateway)
	}

	return result, nil
}

// Verify implements [ServerAdapter]. GET /admin/verify with the given token
// rather than the stored one.
func (h *httpServerAdapter) Verify(ctx context.Context, token string) (models.VerifyResponse, error) {
	var result models.VerifyResponse

	resp, err := h.request(ctx).
		SetAuthToken(token).
		SetResult(&result).
		Get("/admin/verify")
	if err != nil {
		return models.VerifyResponse{}, fmt.Errorf("%w: verify request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyResponse{}, err
	}

	return result, nil
}

// GetStats implements [ServerAdapter]. GET /admin/stats.
func (h *httpServerAdapter) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var result models.DashboardStats

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/admin/stats")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("%w: stats request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardStats{}, err
	}

	return result, nil
}

// ListProjects implements [ServerAdapter]. GET /projects.
func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	var result []models.ProjectSummary

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/projects")
	if err != nil {
		return nil, fmt.Errorf("%w: list projects request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// GetProject implements [ServerAdapter]. GET /projects/{id}.
func (h *httpServerAdapter) GetProject(ctx context.Context, id string) (models.ProjectDetail, error) {
	var result models.ProjectDetail

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/projects/{id}")
	if err != nil {
		return models.ProjectDetail{}, fmt.Errorf("%w: get project request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProjectDetail{}, err
	}

	return result, nil
}

// CreateProject implements [ServerAdapter]. POST /projects as
// multipart/form-data.
func (h *httpServerAdapter) CreateProject(ctx context.Context, meta models.ProjectMetadata, video models.MediaFile, thumbnail *models.MediaFile) (models.ProjectSummary, error) {
	var result models.ProjectSummary

	req := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"title":       meta.Title,
			"description": meta.Description,
			"category":    meta.Category,
		})
	addMultipartFile(req, "video", video)
	if thumbnail != nil {
		addMultipartFile(req, "thumbnail", *thumbnail)
	}

	resp, err := req.SetResult(&result).Post("/projects")
	if err != nil {
		return models.ProjectSummary{}, fmt.Errorf("%w: create project request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProjectSummary{}, err
	}

	return result, nil
}

// UpdateProject implements [ServerAdapter]. PUT /projects/{id}.
func (h *httpServerAdapter) UpdateProject(ctx context.Context, id string, meta models.ProjectMetadata) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(meta).
		Put("/projects/{id}")
	if err != nil {
		return fmt.Errorf("%w: update project request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// DeleteProject implements [ServerAdapter]. DELETE /projects/{id}.
func (h *httpServerAdapter) DeleteProject(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/projects/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete project request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// GetSiteSettings implements [ServerAdapter]. GET /site-settings.
func (h *httpServerAdapter) GetSiteSettings(ctx context.Context) (models.SiteSettings, error) {
	var result models.SiteSettings

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/site-settings")
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%w: get site settings request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SiteSettings{}, err
	}

	if version, ok := utils.ParseETag(resp.Header().Get("ETag")); ok {
		result.Version = version
	}

	return result, nil
}

// UpdateSiteSettings implements [ServerAdapter]. PUT /site-settings.
func (h *httpServerAdapter) UpdateSiteSettings(ctx context.Context, s models.SiteSettings) (int64, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(s)
	if s.Version > 0 {
		req.SetHeader("If-Match", utils.FormatETag(s.Version))
	}

	resp, err := req.Put("/site-settings")
	if err != nil {
		return 0, fmt.Errorf("%w: update site settings request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	version, _ := utils.ParseETag(resp.Header().Get("ETag"))
	return version, nil
}

// UploadLogo implements [ServerAdapter]. POST /site-settings/logo.
func (h *httpServerAdapter) UploadLogo(ctx context.Context, logo models.MediaFile) (models.LogoResponse, error) {
	var result models.LogoResponse

	req := h.authedRequest(ctx)
	addMultipartFile(req, "logo", logo)

	resp, err := req.SetResult(&result).Post("/site-settings/logo")
	if err != nil {
		return models.LogoResponse{}, fmt.Errorf("%w: upload logo request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LogoResponse{}, err
	}

	return result, nil
}

// ListReviews implements [ServerAdapter]. GET /reviews.
func (h *httpServerAdapter) ListReviews(ctx context.Context) ([]models.Review, error) {
	var result []models.Review

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/reviews")
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateReview implements [ServerAdapter]. POST /reviews.
func (h *httpServerAdapter) CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	var result models.Review

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&result).
		Post("/reviews")
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: create review request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Review{}, err
	}

	return result, nil
}

// UpdateReview implements [ServerAdapter]. PUT /reviews/{id}.
func (h *httpServerAdapter) UpdateReview(ctx context.Context, id string, u models.ReviewUpdate) (models.Review, error) {
	var result models.Review

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(u).
		SetResult(&result).
		Put("/reviews/{id}")
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: update review request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Review{}, err
	}

	return result, nil
}

// DeleteReview implements [ServerAdapter]. DELETE /reviews/{id}.
func (h *httpServerAdapter) DeleteReview(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/reviews/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete review request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter]. GET /version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("%w: version request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return result, nil
}

// ResolveURL implements [ServerAdapter]. Absolute URLs and empty references
// are returned unchanged.
func (h *httpServerAdapter) ResolveURL(ref string) string {
	if ref == "" || strings.Contains(ref, "://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return h.origin + ref
}

// addMultipartFile adds f as a file part. A part without a file name would
// be read as a plain form value, so the field name is used as a fallback.
func addMultipartFile(req *resty.Request, field string, f models.MediaFile) {
	name := f.FileName
	if name == "" {
		name = field
	}
	req.SetMultipartField(field, name, f.ContentType, f.Content)
}
