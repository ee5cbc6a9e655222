package store

import (
	"context"

	"github.com/MKhiriev/rexora-cms/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStorage keeps the admin client's session on the local machine.
type SessionStorage interface {
	// Load returns the saved session or [ErrSessionNotFound].
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	// Clear removes the session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
