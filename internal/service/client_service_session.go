package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/rexora-cms/internal/adapter"
	"github.com/MKhiriev/rexora-cms/internal/app"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/models"
)

type clientSessionService struct {
	storage store.SessionStorage
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

func NewClientSessionService(storage store.SessionStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionService {
	return &clientSessionService{
		storage: storage,
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) error {
	creds.Email = strings.TrimSpace(creds.Email)
	creds.Password = strings.TrimSpace(creds.Password)
	if creds.Email == "" || creds.Password == "" {
		return &ClientError{Kind: ErrValidation, Message: app.MsgInvalidCredentials, Err: ErrInvalidDataProvided}
	}

	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("login failed")
		return mapAdapterError(err, app.MsgLoginFailed)
	}

	session := models.Session{Token: resp.Token}
	if err = s.storage.Save(ctx, session); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	s.set(session)
	return nil
}

func (s *clientSessionService) Restore(ctx context.Context) (bool, error) {
	log := s.logger.With().Str("func", "clientSessionService.Restore").Logger()

	session, err := s.storage.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading session: %w", err)
	}

	verify, err := s.adapter.Verify(ctx, session.Token)
	if err == nil && verify.Valid {
		s.set(session)
		return true, nil
	}

	if err == nil || errors.Is(err, adapter.ErrUnauthorized) {
		log.Info().Msg("stored token rejected, discarding")
		return false, s.Logout(ctx)
	}

	// the server could not answer, keep the token for the next run
	log.Err(err).Msg("session verification failed")
	return false, mapAdapterError(err, app.MsgServiceUnavailable)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.set(models.Session{})

	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (s *clientSessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *clientSessionService) Invalidate(ctx context.Context, err error) error {
	if errors.Is(err, ErrUnauthorized) {
		if clearErr := s.Logout(ctx); clearErr != nil {
			s.logger.Err(clearErr).Msg("failed to discard rejected session")
		}
	}
	return err
}

// set keeps the adapter's bearer in step with the session.
func (s *clientSessionService) set(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.adapter.SetToken(session.Token)
}
