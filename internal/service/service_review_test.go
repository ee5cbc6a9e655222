package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/mock"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/validators"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReviewService(t *testing.T, ctrl *gomock.Controller) (*reviewService, *mock.MockReviewRepository) {
	t.Helper()
	reviews := mock.NewMockReviewRepository(ctrl)
	svc := NewReviewService(reviews, validators.NewContentValidator(), nil, logger.Nop()).(*reviewService)
	svc.now = func() time.Time { return fixedNow }
	return svc, reviews
}

func ptr[T any](v T) *T { return &v }

// ── Create ───────────────────────────────────────────────────────────────────

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reviews := newTestReviewService(t, ctrl)

	reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r models.Review) error {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "Ann", r.ClientName)
		assert.Equal(t, fixedNow, r.CreatedAt)
		return nil
	})

	got, err := svc.Create(context.Background(), models.ReviewInput{ClientName: " Ann ", ReviewText: "Great", StarRating: 5})

	require.NoError(t, err)
	assert.Equal(t, "Ann", got.ClientName)
	assert.Equal(t, 5, got.StarRating)
}

func TestReviewService_Create_RejectedByDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reviews := newTestReviewService(t, ctrl)

	reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrConstraintViolation)

	_, err := svc.Create(context.Background(), models.ReviewInput{ClientName: "Ann", ReviewText: "Great", StarRating: 5})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestReviewService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		in      models.ReviewInput
		wantErr error
	}{
		{name: "no name", in: models.ReviewInput{ReviewText: "x", StarRating: 3}, wantErr: validators.ErrEmptyClientName},
		{name: "no text", in: models.ReviewInput{ClientName: "x", StarRating: 3}, wantErr: validators.ErrEmptyReviewText},
		{name: "rating zero", in: models.ReviewInput{ClientName: "x", ReviewText: "y"}, wantErr: validators.ErrInvalidRating},
		{name: "rating six", in: models.ReviewInput{ClientName: "x", ReviewText: "y", StarRating: 6}, wantErr: validators.ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestReviewService(t, ctrl)

			_, err := svc.Create(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestReviewService_Update_AppliesOnlyGivenFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reviews := newTestReviewService(t, ctrl)
	ctx := context.Background()

	current := models.Review{ID: "r1", ClientName: "Ann", ReviewText: "Great", StarRating: 4, CreatedAt: fixedNow}
	want := current
	want.StarRating = 5

	gomock.InOrder(
		reviews.EXPECT().Get(ctx, "r1").Return(current, nil),
		reviews.EXPECT().Update(ctx, want).Return(nil),
	)

	got, err := svc.Update(ctx, "r1", models.ReviewUpdate{StarRating: ptr(5)})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReviewService_Update_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reviews := newTestReviewService(t, ctrl)

	_, err := svc.Update(context.Background(), "r1", models.ReviewUpdate{})
	assert.ErrorIs(t, err, validators.ErrNoDataToUpdate)

	reviews.EXPECT().Get(gomock.Any(), "missing").Return(models.Review{}, store.ErrReviewNotFound)
	_, err = svc.Update(context.Background(), "missing", models.ReviewUpdate{ClientName: ptr("Bob")})
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

// ── Delete / List ────────────────────────────────────────────────────────────

func TestReviewService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reviews := newTestReviewService(t, ctrl)

	reviews.EXPECT().Delete(gomock.Any(), "r1").Return(nil)
	reviews.EXPECT().Delete(gomock.Any(), "missing").Return(store.ErrReviewNotFound)

	assert.NoError(t, svc.Delete(context.Background(), "r1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrReviewNotFound)
}

func TestReviewService_List_InvalidatedByCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, reviews := newTestReviewService(t, ctrl)
	svc.cache = newTestCache()
	ctx := context.Background()

	gomock.InOrder(
		reviews.EXPECT().List(ctx).Return([]models.Review{}, nil),
		reviews.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		reviews.EXPECT().List(ctx).Return([]models.Review{{ID: "r1"}}, nil),
	)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Create(ctx, models.ReviewInput{ClientName: "Ann", ReviewText: "Great", StarRating: 5})
	require.NoError(t, err)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
