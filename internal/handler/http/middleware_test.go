package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/service"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantDetail string
	}{
		{name: "no header", header: "", wantDetail: app.MsgNotAuthenticated},
		{name: "not a bearer", header: "Basic abc", wantDetail: app.MsgNotAuthenticated},
		{name: "bearer without token", header: "Bearer ", wantDetail: app.MsgNotAuthenticated},
		{name: "expired token", header: "Bearer " + testToken, parseErr: service.ErrTokenIsExpiredOrInvalid, wantDetail: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			if tt.parseErr != nil {
				ts.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, tt.parseErr)
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, rec))
		})
	}
}

func TestAuth_StoresAdminEmail(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.expectAdmin()

	var email string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ = utils.GetAdminEmailFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, withBearer(httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testAdminEmail, email)
}

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "absent", incoming: "", wantKept: false},
		{name: "client id kept", incoming: "req-42", wantKept: true},
		{name: "spaces replaced", incoming: "req 42", wantKept: false},
		{name: "too long replaced", incoming: strings.Repeat("a", maxTraceIDLength+1), wantKept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var ctxLogger *logger.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogger = logger.FromRequest(r)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.wantKept {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "expected a generated UUID, got %q", got)
			}
			assert.NotNil(t, ctxLogger)
		})
	}
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func TestWithGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.MessageResponse{Message: "hello"}, http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hello"}`, string(plain))
}

func TestWithGZip_PlainWhenNotAccepted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})

	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZip_SkipsMediaAndEmptyResponses(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		status      int
	}{
		{name: "video", contentType: "video/mp4", status: http.StatusOK},
		{name: "image", contentType: "image/png", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				if tt.status != http.StatusNoContent {
					_, _ = w.Write([]byte("raw"))
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			if tt.status != http.StatusNoContent {
				assert.Equal(t, "raw", rec.Body.String())
			}
		})
	}
}

func TestHasToken(t *testing.T) {
	assert.True(t, hasToken("deflate, gzip;q=0.8", "gzip"))
	assert.True(t, hasToken("GZIP", "gzip"))
	assert.False(t, hasToken("x-gzip-ish", "gzip"))
	assert.False(t, hasToken("", "gzip"))
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"title":"Demo"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = string(raw)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPut, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"title":"Demo"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// withBodyLimit
// ─────────────────────────────────────────────

func TestWithBodyLimit_DeclaredLengthTooLarge(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	h.cfg.MaxUploadBytes = 8

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	rec := httptest.NewRecorder()
	h.withBodyLimit(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, app.MsgRequestTooLarge, detailOf(t, rec))
}

func TestWithBodyLimit_StreamCapped(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	h.cfg.MaxUploadBytes = 8

	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789"))
	req.ContentLength = -1
	h.withBodyLimit(next).ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.True(t, errors.As(readErr, &maxErr))
}

func TestWithBodyLimit_Disabled(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	h.withBodyLimit(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))

	assert.True(t, called)
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		n, err := w.Write([]byte("abc"))

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 3, w.size)
	})

	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)

		assert.Equal(t, http.StatusTeapot, w.status)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("nothing written", func(t *testing.T) {
		w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		assert.Equal(t, http.StatusOK, w.statusOrOK())
	})

	t.Run("unwrap", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}
		assert.Same(t, rec, w.Unwrap())
	})
}

// ─────────────────────────────────────────────
// withMetrics
// ─────────────────────────────────────────────

func TestWithMetrics_UsesRoutePattern(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.projects.EXPECT().Get(gomock.Any(), "metrics-probe").Return(models.Project{}, service.ErrProjectNotFound)

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/projects/{id}", "404")
	before := testutil.ToFloat64(counter)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/projects/metrics-probe", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "info"},
		{status: http.StatusNotFound, level: "warn"},
		{status: http.StatusBadGateway, level: "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			ctx := zerolog.New(&buf).WithContext(context.Background())

			h := &Handler{logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/projects", nil).WithContext(ctx)
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, float64(4), entry["size"])
			assert.Equal(t, "/api/projects", entry["uri"])
		})
	}
}
