// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server's /api.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{ServerURL: serverURL + "/api", RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080/api", want: "http://localhost:8080/api"},
		{name: "trailing slash", raw: "https://cms.example.com/api/", want: "https://cms.example.com/api"},
		{name: "no scheme", raw: "localhost:8080/api", want: "http://localhost:8080/api"},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveURL(t *testing.T) {
	a := newTestAdapter(t, "http://cms.local:9000")

	assert.Equal(t, "http://cms.local:9000/api/media/a.mp4", a.ResolveURL("/api/media/a.mp4"))
	assert.Equal(t, "https://cdn.example.com/x.png", a.ResolveURL("https://cdn.example.com/x.png"))
	assert.Equal(t, "", a.ResolveURL(""))
}

// ── Login / Verify ──────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin@example.com", creds.Email)

		writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: "tok", Message: "Login successful"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "admin@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Empty(t, a.Token(), "login must not store the token by itself")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "x", Password: "y"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "Login successful"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "x", Password: "y"})

	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Login(context.Background(), models.Credentials{Email: "x", Password: "y"})

	assert.ErrorIs(t, err, ErrTransport)
}

func TestVerify_UsesGivenToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/verify", r.URL.Path)
		assert.Equal(t, "Bearer given", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.VerifyResponse{Valid: true, Email: "admin@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored")

	got, err := a.Verify(context.Background(), "given")

	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.Equal(t, "admin@example.com", got.Email)
}

// ── Projects ────────────────────────────────────────────────────────────────

func TestListProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.ProjectSummary{{ID: "1", Title: "Demo"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.ListProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Demo", got[0].Title)
}

func TestGetProject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/missing", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "Project not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetProject(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Project not found")
}

func TestCreateProject_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Demo", r.FormValue("title"))
		assert.Equal(t, "Project", r.FormValue("category"))

		video, header, err := r.FormFile("video")
		require.NoError(t, err)
		defer video.Close()
		assert.Equal(t, "clip.mp4", header.Filename)
		assert.Equal(t, "video/mp4", header.Header.Get("Content-Type"))
		body, _ := io.ReadAll(video)
		assert.Equal(t, "video-bytes", string(body))

		_, thumbHeader, err := r.FormFile("thumbnail")
		require.NoError(t, err)
		assert.Equal(t, "thumbnail", thumbHeader.Filename)

		writeJSON(t, w, http.StatusOK, models.ProjectSummary{ID: "new", Title: "Demo"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	video := models.MediaFile{FileName: "clip.mp4", ContentType: "video/mp4", Content: strings.NewReader("video-bytes")}
	thumb := &models.MediaFile{ContentType: "image/png", Content: strings.NewReader("png")}

	got, err := a.CreateProject(context.Background(), models.ProjectMetadata{Title: "Demo", Category: "Project"}, video, thumb)

	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestUpdateProject_SendsOnlyMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/projects/p1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body, 3)
		assert.Equal(t, "Demo2", body["title"])

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Project updated successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateProject(context.Background(), "p1", models.ProjectMetadata{Title: "Demo2", Category: "Project"})

	require.NoError(t, err)
}

func TestDeleteProject_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid or expired token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteProject(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Site settings ───────────────────────────────────────────────────────────

func TestGetSiteSettings_ReadsETag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/site-settings", r.URL.Path)
		w.Header().Set("ETag", `"4"`)
		writeJSON(t, w, http.StatusOK, models.DefaultSiteSettings())
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetSiteSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, "Rexora Media", got.HeroTitle)
	assert.Len(t, got.Services, 7)
}

func TestUpdateSiteSettings_SendsIfMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, `"4"`, r.Header.Get("If-Match"))
		w.Header().Set("ETag", `"5"`)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Site settings updated successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	s := models.DefaultSiteSettings()
	s.Version = 4

	version, err := a.UpdateSiteSettings(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, int64(5), version)
}

func TestUpdateSiteSettings_NoIfMatchForDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("If-Match"))
		w.Header().Set("ETag", `"1"`)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	version, err := a.UpdateSiteSettings(context.Background(), models.DefaultSiteSettings())

	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestUpdateSiteSettings_PreconditionFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusPreconditionFailed, models.ErrorResponse{Detail: "conflict"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	s := models.DefaultSiteSettings()
	s.Version = 2

	_, err := a.UpdateSiteSettings(context.Background(), s)

	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestUploadLogo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/site-settings/logo", r.URL.Path)
		_, header, err := r.FormFile("logo")
		require.NoError(t, err)
		assert.Equal(t, "logo.png", header.Filename)
		writeJSON(t, w, http.StatusOK, models.LogoResponse{Message: "Logo uploaded successfully", Logo: "/api/media/k.png"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UploadLogo(context.Background(), models.MediaFile{FileName: "logo.png", ContentType: "image/png", Content: strings.NewReader("png")})

	require.NoError(t, err)
	assert.Equal(t, "/api/media/k.png", got.Logo)
}

// ── Reviews ─────────────────────────────────────────────────────────────────

func TestReviews_CRUD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/reviews":
			writeJSON(t, w, http.StatusOK, []models.Review{{ID: "r1", StarRating: 5}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/reviews":
			writeJSON(t, w, http.StatusOK, models.Review{ID: "r2", StarRating: 4})
		case r.Method == http.MethodPut && r.URL.Path == "/api/reviews/r2":
			writeJSON(t, w, http.StatusOK, models.Review{ID: "r2", StarRating: 3})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/reviews/r2":
			writeJSON(t, w, http.StatusOK, models.MessageResponse{})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	list, err := a.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	created, err := a.CreateReview(ctx, models.ReviewInput{ClientName: "A", ReviewText: "B", StarRating: 4})
	require.NoError(t, err)
	assert.Equal(t, "r2", created.ID)

	rating := 3
	updated, err := a.UpdateReview(ctx, "r2", models.ReviewUpdate{StarRating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.StarRating)

	require.NoError(t, a.DeleteReview(ctx, "r2"))
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.4.0", Commit: "abc123"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.VersionResponse{Version: "1.4.0", Commit: "abc123"}, got)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusRequestEntityTooLarge, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusPreconditionFailed, ErrPreconditionFailed},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetStats(context.Background())

			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), http.StatusText(tt.status))
		})
	}
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("plain message"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetStats(context.Background())

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad request: plain message", err.Error())
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetStats(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
