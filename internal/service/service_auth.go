package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/MKhiriev/rexora-cms/internal/logger"
	"github.com/MKhiriev/rexora-cms/internal/store"
	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"golang.org/x/crypto/bcrypt"
)

const loginAttemptsKeyPrefix = "login:"

// authService is the concrete implementation of AuthService.
// It checks the single configured admin account and manages the JWT token
// lifecycle. The admin password is held only as a bcrypt hash.
type authService struct {
	// attempts counts login attempts per client IP.
	attempts store.AttemptStorage

	adminEmail        string
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	maxAttempts   int64
	attemptWindow time.Duration

	logger *logger.Logger
}

// NewAuthService hashes the configured admin password and returns an
// AuthService throttled by attempts.
//
// A zero limits.LoginAttempts disables throttling.
func NewAuthService(attempts store.AttemptStorage, cfg config.App, limits config.Limits, logger *logger.Logger) (AuthService, error) {
	email := strings.TrimSpace(cfg.AdminEmail)
	password := strings.TrimSpace(cfg.AdminPassword)
	if email == "" || password == "" {
		return nil, ErrAdminIsNotConfigured
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	return &authService{
		attempts:          attempts,
		adminEmail:        email,
		adminPasswordHash: hash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		maxAttempts:       int64(limits.LoginAttempts),
		attemptWindow:     limits.LoginWindow,
		logger:            logger,
	}, nil
}

// Login authenticates the admin.
//
// Both the e-mail and the password are trimmed before comparison. Any
// mismatch is reported as ErrInvalidCredentials without telling which part
// was wrong. A successful login resets the attempt counter of clientIP.
func (a *authService) Login(ctx context.Context, creds models.Credentials, clientIP string) (models.Token, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Login").Logger()

	if err := a.checkAttempts(ctx, clientIP); err != nil {
		return models.Token{}, err
	}

	email := strings.TrimSpace(creds.Email)
	password := strings.TrimSpace(creds.Password)

	log.Info().Str("email", email).Msg("login attempt")

	if email != a.adminEmail {
		log.Warn().Str("email", email).Msg("invalid email attempt")
		return models.Token{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("invalid password attempt")
		return models.Token{}, ErrInvalidCredentials
	}

	if a.maxAttempts > 0 && clientIP != "" {
		if err := a.attempts.Reset(ctx, loginAttemptsKeyPrefix+clientIP); err != nil {
			log.Err(err).Str("ip", clientIP).Msg("failed to reset login attempts")
		}
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("email", email).Msg("successful login")
	return token, nil
}

// checkAttempts records one attempt for clientIP. A failing counter does not
// block the login.
func (a *authService) checkAttempts(ctx context.Context, clientIP string) error {
	if a.maxAttempts <= 0 || clientIP == "" {
		return nil
	}

	log := logger.FromContext(ctx)

	hits, err := a.attempts.Hit(ctx, loginAttemptsKeyPrefix+clientIP, a.attemptWindow)
	if err != nil {
		log.Err(err).Str("ip", clientIP).Msg("failed to count login attempt")
		return nil
	}

	if hits > a.maxAttempts {
		log.Warn().Str("ip", clientIP).Int64("attempts", hits).Msg("too many login attempts")
		return ErrTooManyAttempts
	}

	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, wrong subject)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	email, err := token.GetEmail()
	if err != nil || email != a.adminEmail {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
