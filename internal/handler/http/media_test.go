package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/service"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type seekCloser struct {
	*bytes.Reader
	closed bool
}

func (s *seekCloser) Close() error {
	s.closed = true
	return nil
}

func mediaObject(key, contentType string, body io.ReadCloser, size int64) store.MediaObject {
	return store.MediaObject{
		StoredMedia: models.StoredMedia{Key: key, ContentType: contentType, Size: size, ModifiedAt: testCreatedAt},
		Body:        body,
	}
}

func TestServeMedia_Full(t *testing.T) {
	h, ts := newTestHandler(t)

	body := &seekCloser{Reader: bytes.NewReader([]byte("abcdefgh"))}
	ts.media.EXPECT().Open(gomock.Any(), "v1.mp4").Return(mediaObject("v1.mp4", "video/mp4", body, 8), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/media/v1.mp4", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "video/mp4", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "sandbox")
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "abcdefgh", rec.Body.String())
	assert.True(t, body.closed)
}

func TestServeMedia_Range(t *testing.T) {
	h, ts := newTestHandler(t)

	body := &seekCloser{Reader: bytes.NewReader([]byte("abcdefgh"))}
	ts.media.EXPECT().Open(gomock.Any(), "v1.mp4").Return(mediaObject("v1.mp4", "video/mp4", body, 8), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/media/v1.mp4", nil)
	req.Header.Set("Range", "bytes=2-4")
	rec := serve(h, req)

	require.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "cde", rec.Body.String())
	assert.Equal(t, "bytes 2-4/8", rec.Header().Get("Content-Range"))
}

func TestServeMedia_Streamed(t *testing.T) {
	h, ts := newTestHandler(t)

	body := io.NopCloser(strings.NewReader("png-bytes"))
	ts.media.EXPECT().Open(gomock.Any(), "logo.png").Return(mediaObject("logo.png", "image/png", body, 9), nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/media/logo.png", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestServeMedia_UnknownTypeIsNotGuessed(t *testing.T) {
	h, ts := newTestHandler(t)

	body := &seekCloser{Reader: bytes.NewReader([]byte("<html><script>x</script></html>"))}
	ts.media.EXPECT().Open(gomock.Any(), "legacy.html").Return(mediaObject("legacy.html", "", body, 31), nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/media/legacy.html", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
}

func TestServeMedia_NotFound(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.media.EXPECT().Open(gomock.Any(), "missing.mp4").Return(store.MediaObject{}, service.ErrMediaNotFound)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/media/missing.mp4", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgMediaNotFound, detailOf(t, rec))
}
