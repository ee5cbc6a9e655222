package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/mock"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAdminService wires a logged-in admin. Invalidate passes errors through
// unchanged, as the real session service does.
func newTestAdminService(t *testing.T, ctrl *gomock.Controller) (AdminService, *mock.MockServerAdapter, *mock.MockSessionService) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockSessionService(ctrl)

	session.EXPECT().Current().Return(models.Session{Token: "tok"}).AnyTimes()
	session.EXPECT().Invalidate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, err error) error { return err }).AnyTimes()

	return NewClientAdminService(serverAdapter, session, logger.Nop()), serverAdapter, session
}

func testVideo(size int64) models.MediaFile {
	return models.MediaFile{FileName: "clip.mp4", ContentType: "video/mp4", Size: size, Content: strings.NewReader("v")}
}

// ── Authentication ───────────────────────────────────────────────────────────

func TestClientAdmin_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().Current().Return(models.Session{}).AnyTimes()

	svc := NewClientAdminService(serverAdapter, session, logger.Nop())
	ctx := context.Background()

	_, err := svc.GetStats(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = svc.DeleteProject(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.SaveSiteSettings(ctx, models.DefaultSiteSettings(), nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── CreateProject ────────────────────────────────────────────────────────────

func TestClientAdmin_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)

	serverAdapter.EXPECT().
		CreateProject(gomock.Any(), models.ProjectMetadata{Title: "Demo", Category: models.DefaultProjectCategory}, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ models.ProjectMetadata, video models.MediaFile, _ *models.MediaFile) (models.ProjectSummary, error) {
			assert.Equal(t, models.MediaVideo, video.Kind)
			return models.ProjectSummary{ID: "p1", Title: "Demo"}, nil
		})

	got, err := svc.CreateProject(context.Background(), models.ProjectMetadata{Title: " Demo "}, testVideo(1024), nil)

	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

func TestClientAdmin_CreateProject_RejectedLocally(t *testing.T) {
	tests := []struct {
		name      string
		meta      models.ProjectMetadata
		video     models.MediaFile
		thumbnail *models.MediaFile
		wantErr   error
		wantMsg   string
	}{
		{
			name:    "empty title",
			meta:    models.ProjectMetadata{Title: " "},
			video:   testVideo(1),
			wantErr: validators.ErrEmptyTitle,
		},
		{
			name:    "missing video",
			meta:    models.ProjectMetadata{Title: "Demo"},
			wantErr: validators.ErrVideoRequired,
		},
		{
			name:    "oversize video",
			meta:    models.ProjectMetadata{Title: "Demo"},
			video:   testVideo(12 * models.MB),
			wantErr: validators.ErrFileTooLarge,
			wantMsg: "Video file is too large (12.00MB). Maximum allowed size is 10MB. Please compress your video and try again.",
		},
		{
			name:    "video with image type",
			meta:    models.ProjectMetadata{Title: "Demo"},
			video:   models.MediaFile{ContentType: "image/png", Size: 1, Content: strings.NewReader("x")},
			wantErr: validators.ErrInvalidFileType,
		},
		{
			name:      "oversize thumbnail",
			meta:      models.ProjectMetadata{Title: "Demo"},
			video:     testVideo(1),
			thumbnail: &models.MediaFile{ContentType: "image/jpeg", Size: 6 * models.MB, Content: strings.NewReader("x")},
			wantErr:   validators.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// the adapter mock has no expectations; any call fails the test
			svc, _, _ := newTestAdminService(t, ctrl)

			_, err := svc.CreateProject(context.Background(), tt.meta, tt.video, tt.thumbnail)

			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestClientAdmin_CreateProject_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)

	serverAdapter.EXPECT().CreateProject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ProjectSummary{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Invalid file type. Please upload a video file."))

	_, err := svc.CreateProject(context.Background(), models.ProjectMetadata{Title: "Demo"}, testVideo(1), nil)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Invalid file type. Please upload a video file.", err.Error())
}

// ── UpdateProject / DeleteProject ────────────────────────────────────────────

func TestClientAdmin_UpdateAndDeleteProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().UpdateProject(ctx, "p1", models.ProjectMetadata{Title: "Demo2", Category: "Reel"}).Return(nil)
	serverAdapter.EXPECT().DeleteProject(ctx, "p1").Return(nil)
	serverAdapter.EXPECT().DeleteProject(ctx, "p1").Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgProjectNotFound))

	require.NoError(t, svc.UpdateProject(ctx, "p1", models.ProjectMetadata{Title: "Demo2", Category: "Reel"}))
	require.NoError(t, svc.DeleteProject(ctx, "p1"))

	err := svc.DeleteProject(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, app.MsgProjectNotFound, err.Error())
}

// ── SaveSiteSettings ─────────────────────────────────────────────────────────

// ── CurrentSiteSettings ──────────────────────────────────────────────────────

func TestClientAdmin_CurrentSiteSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)

	stored := models.SiteSettings{HeroTitle: "Stored hero", ContactEmail: "studio@example.com", Version: 9}
	serverAdapter.EXPECT().GetSiteSettings(gomock.Any()).Return(stored, nil)

	got, err := svc.CurrentSiteSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestClientAdmin_CurrentSiteSettings_NoDefaultsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)

	serverAdapter.EXPECT().GetSiteSettings(gomock.Any()).
		Return(models.SiteSettings{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Service Unavailable"))

	got, err := svc.CurrentSiteSettings(context.Background())

	assert.ErrorIs(t, err, ErrServer)
	assert.Zero(t, got, "a failed read must not look like a document")
}

func TestClientAdmin_SaveSiteSettings_UploadsLogoFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)
	ctx := context.Background()

	doc := models.DefaultSiteSettings()
	doc.Version = 3
	logo := &models.MediaFile{FileName: "logo.png", ContentType: "image/png", Size: 1024, Content: strings.NewReader("png")}

	gomock.InOrder(
		serverAdapter.EXPECT().UploadLogo(ctx, gomock.Any()).
			Return(models.LogoResponse{Message: app.MsgLogoUploaded, Logo: "/api/media/new.png"}, nil),
		serverAdapter.EXPECT().UpdateSiteSettings(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.SiteSettings) (int64, error) {
				// the document carries the fresh reference, never a stale one
				assert.Equal(t, "/api/media/new.png", s.Logo)
				assert.Equal(t, int64(3), s.Version)
				return 4, nil
			}),
	)

	saved, err := svc.SaveSiteSettings(ctx, doc, logo)

	require.NoError(t, err)
	assert.Equal(t, "/api/media/new.png", saved.Logo)
	assert.Equal(t, int64(4), saved.Version)
	assert.Empty(t, doc.Logo, "caller's document is not modified")
}

func TestClientAdmin_SaveSiteSettings_FailedUploadSkipsSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)

	serverAdapter.EXPECT().UploadLogo(gomock.Any(), gomock.Any()).
		Return(models.LogoResponse{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Internal Server Error"))

	logo := &models.MediaFile{ContentType: "image/png", Size: 10, Content: strings.NewReader("x")}
	_, err := svc.SaveSiteSettings(context.Background(), models.DefaultSiteSettings(), logo)

	assert.ErrorIs(t, err, ErrServer)
}

func TestClientAdmin_SaveSiteSettings_RejectedLocally(t *testing.T) {
	tests := []struct {
		name    string
		doc     models.SiteSettings
		logo    *models.MediaFile
		wantErr error
	}{
		{
			name:    "logo too large",
			doc:     models.DefaultSiteSettings(),
			logo:    &models.MediaFile{ContentType: "image/png", Size: 3 * models.MB, Content: strings.NewReader("x")},
			wantErr: validators.ErrFileTooLarge,
		},
		{
			name:    "logo not an image",
			doc:     models.DefaultSiteSettings(),
			logo:    &models.MediaFile{ContentType: "application/pdf", Size: 1, Content: strings.NewReader("x")},
			wantErr: validators.ErrInvalidFileType,
		},
		{
			name:    "empty document",
			doc:     models.SiteSettings{},
			wantErr: validators.ErrNoDataToUpdate,
		},
		{
			name:    "invalid email",
			doc:     models.SiteSettings{HeroTitle: "Hi", ContactEmail: "nope"},
			wantErr: validators.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAdminService(t, ctrl)

			_, err := svc.SaveSiteSettings(context.Background(), tt.doc, tt.logo)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientAdmin_SaveSiteSettings_EmptyDocumentWithLogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)

	serverAdapter.EXPECT().UploadLogo(gomock.Any(), gomock.Any()).Return(models.LogoResponse{Logo: "/api/media/l.png"}, nil)
	serverAdapter.EXPECT().UpdateSiteSettings(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	logo := &models.MediaFile{ContentType: "image/png", Size: 1, Content: strings.NewReader("x")}
	saved, err := svc.SaveSiteSettings(context.Background(), models.SiteSettings{}, logo)

	require.NoError(t, err)
	assert.Equal(t, "/api/media/l.png", saved.Logo)
}

func TestClientAdmin_SaveSiteSettings_Stale(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)

	serverAdapter.EXPECT().UpdateSiteSettings(gomock.Any(), gomock.Any()).
		Return(int64(0), fmt.Errorf("%w: %s", adapter.ErrPreconditionFailed, app.MsgVersionConflict))

	_, err := svc.SaveSiteSettings(context.Background(), models.DefaultSiteSettings(), nil)

	assert.ErrorIs(t, err, ErrSettingsVersionChange)
}

// ── Expired session ──────────────────────────────────────────────────────────

func TestClientAdmin_UnauthorizedClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSessionStorage(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	session := NewClientSessionService(storage, serverAdapter, logger.Nop())

	gomock.InOrder(
		serverAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{Token: "tok"}, nil),
		storage.EXPECT().Save(ctx, models.Session{Token: "tok"}).Return(nil),
		serverAdapter.EXPECT().SetToken("tok"),
		serverAdapter.EXPECT().GetStats(ctx).
			Return(models.DashboardStats{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid)),
		serverAdapter.EXPECT().SetToken(""),
		storage.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, session.Login(ctx, models.Credentials{Email: "admin@rexora.test", Password: "s3cret"}))

	svc := NewClientAdminService(serverAdapter, session, logger.Nop())
	_, err := svc.GetStats(ctx)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, session.Current().IsZero())

	// the next privileged call fails before reaching the server
	_, err = svc.GetStats(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Reviews ──────────────────────────────────────────────────────────────────

func TestClientAdmin_Reviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestAdminService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, models.ReviewInput{ClientName: "Ann", ReviewText: "Great", StarRating: 9})
	assert.ErrorIs(t, err, validators.ErrInvalidRating)

	serverAdapter.EXPECT().CreateReview(ctx, models.ReviewInput{ClientName: "Ann", ReviewText: "Great", StarRating: 5}).
		Return(models.Review{ID: "r1"}, nil)
	review, err := svc.CreateReview(ctx, models.ReviewInput{ClientName: " Ann", ReviewText: "Great ", StarRating: 5})
	require.NoError(t, err)
	assert.Equal(t, "r1", review.ID)

	serverAdapter.EXPECT().UpdateReview(ctx, "missing", gomock.Any()).Return(models.Review{}, adapter.ErrNotFound)
	_, err = svc.UpdateReview(ctx, "missing", models.ReviewUpdate{StarRating: ptr(4)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, app.MsgReviewNotFound, err.Error())

	serverAdapter.EXPECT().DeleteReview(ctx, "r1").Return(nil)
	assert.NoError(t, svc.DeleteReview(ctx, "r1"))
}
