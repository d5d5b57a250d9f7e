package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/cryptox"
	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

type AccessToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

type SessionService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Login exchanges email and password for a bearer access token. Unknown
// emails, wrong passwords and inactive accounts are indistinguishable.
func (s *SessionService) Login(ctx context.Context, email, password string) (AccessToken, error) {
	log := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return AccessToken{}, validation("email and password are required")
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login for unknown email")
			return AccessToken{}, domain.ErrInvalidCredentials
		}
		return AccessToken{}, err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unusable",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
		return AccessToken{}, domain.ErrInvalidCredentials
	}
	if !user.Active {
		log.Warn("login for inactive user", slog.String("user_id", user.ID))
		return AccessToken{}, domain.ErrInvalidCredentials
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, ttl, s.Issuer, time.Now().UTC())
	tok, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return AccessToken{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return AccessToken{Token: tok, UserID: user.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}
