package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
)

type mediaService struct {
	media store.MediaStorage

	logger *logger.Logger
}

func NewMediaService(media store.MediaStorage, logger *logger.Logger) MediaService {
	return &mediaService{
		media:  media,
		logger: logger,
	}
}

// Open reports malformed keys as missing so that probing paths learns
// nothing about the storage layout.
func (m *mediaService) Open(ctx context.Context, key string) (store.MediaObject, error) {
	obj, err := m.media.Open(ctx, key)
	if errors.Is(err, store.ErrMediaNotFound) || errors.Is(err, store.ErrInvalidMediaKey) {
		return store.MediaObject{}, ErrMediaNotFound
	}
	if err != nil {
		return store.MediaObject{}, fmt.Errorf("error opening media: %w", err)
	}

	return obj, nil
}
