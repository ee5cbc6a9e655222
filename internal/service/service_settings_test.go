package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/mock"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSettingsService(t *testing.T, ctrl *gomock.Controller, cache *ContentCache) (SettingsService, *mock.MockSettingsRepository, *mock.MockMediaStorage) {
	t.Helper()
	settings := mock.NewMockSettingsRepository(ctrl)
	media := mock.NewMockMediaStorage(ctrl)
	return NewSettingsService(settings, media, validators.NewContentValidator(), cache, logger.Nop()), settings, media
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestSettingsService_Get_DefaultsWhenNeverSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSettingsService(t, ctrl, nil)

	settings.EXPECT().Get(gomock.Any()).Return(models.SiteSettings{}, store.ErrSettingsNotFound)

	got, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSiteSettings(), got)
	assert.Zero(t, got.Version)
}

func TestSettingsService_Get_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSettingsService(t, ctrl, nil)

	settings.EXPECT().Get(gomock.Any()).Return(models.SiteSettings{}, errors.New("db down"))

	_, err := svc.Get(context.Background())

	require.Error(t, err)
}

func TestSettingsService_Get_CachedCopyIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSettingsService(t, ctrl, newTestCache())

	stored := models.SiteSettings{HeroTitle: "Hi", Services: []models.Service{{Icon: models.IconZap, Title: "Reels"}}, Version: 3}
	settings.EXPECT().Get(gomock.Any()).Return(stored, nil).Times(1)

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	first.Services[0].Title = "changed"

	second, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Reels", second.Services[0].Title)
	assert.Equal(t, int64(3), second.Version)
}

// ── Replace ──────────────────────────────────────────────────────────────────

func TestSettingsService_Replace_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSettingsService(t, ctrl, newTestCache())
	ctx := context.Background()

	doc := models.SiteSettings{HeroTitle: "Hi", ContactEmail: "a@b.co"}
	saved := doc
	saved.Version = 2

	gomock.InOrder(
		settings.EXPECT().Get(ctx).Return(models.SiteSettings{HeroTitle: "Old", Version: 1}, nil),
		settings.EXPECT().Replace(ctx, doc, int64(1)).Return(saved, nil),
		settings.EXPECT().Get(ctx).Return(saved, nil),
	)

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	got, err := svc.Replace(ctx, doc, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)

	// the cache entry was dropped by the write
	fresh, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hi", fresh.HeroTitle)
}

func TestSettingsService_Replace_VersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSettingsService(t, ctrl, nil)

	settings.EXPECT().Replace(gomock.Any(), gomock.Any(), int64(4)).Return(models.SiteSettings{}, store.ErrVersionConflict)

	_, err := svc.Replace(context.Background(), models.SiteSettings{HeroTitle: "Hi"}, 4)

	assert.ErrorIs(t, err, ErrSettingsVersionChange)
}

func TestSettingsService_Replace_InvalidDocumentIsNotSaved(t *testing.T) {
	tests := []struct {
		name    string
		doc     models.SiteSettings
		wantErr error
	}{
		{name: "empty document", doc: models.SiteSettings{}, wantErr: validators.ErrNoDataToUpdate},
		{name: "bad email", doc: models.SiteSettings{ContactEmail: "nope"}, wantErr: validators.ErrInvalidEmail},
		{name: "bad instagram url", doc: models.SiteSettings{InstagramURL: "ftp://x"}, wantErr: validators.ErrInvalidURL},
		{
			name:    "unknown icon",
			doc:     models.SiteSettings{Services: []models.Service{{Icon: "Rocket"}}},
			wantErr: validators.ErrInvalidIcon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestSettingsService(t, ctrl, nil)

			_, err := svc.Replace(context.Background(), tt.doc, 0)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── UploadLogo ───────────────────────────────────────────────────────────────

func TestSettingsService_UploadLogo_StoresOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, media := newTestSettingsService(t, ctrl, nil)

	media.EXPECT().Save(gomock.Any(), "logo.png", "image/png", gomock.Any()).
		Return(models.StoredMedia{Key: "abc.png", Size: 4}, nil)

	// no settings repository expectations: the document is not modified
	ref, err := svc.UploadLogo(context.Background(), models.MediaFile{
		FileName: "logo.png", ContentType: "image/png", Size: 4, Content: strings.NewReader("logo"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/media/abc.png", ref)
}

func TestSettingsService_UploadLogo_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		file    models.MediaFile
		wantErr error
	}{
		{
			name:    "not an image",
			file:    models.MediaFile{ContentType: "application/pdf", Size: 10},
			wantErr: validators.ErrInvalidFileType,
		},
		{
			name:    "over 2MB",
			file:    models.MediaFile{ContentType: "image/png", Size: 2*models.MB + 1},
			wantErr: validators.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestSettingsService(t, ctrl, nil)

			_, err := svc.UploadLogo(context.Background(), tt.file)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsService_UploadLogo_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, media := newTestSettingsService(t, ctrl, nil)

	media.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.StoredMedia{}, errors.New("disk full"))

	_, err := svc.UploadLogo(context.Background(), models.MediaFile{ContentType: "image/png", Size: 1, Content: strings.NewReader("x")})

	assert.ErrorIs(t, err, ErrSavingMedia)
}
