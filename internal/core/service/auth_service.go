package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campaignlab/campaign-api/internal/core/domain"
	"github.com/campaignlab/campaign-api/internal/core/ports"
	"github.com/campaignlab/campaign-api/internal/pkg/password"
	"github.com/campaignlab/campaign-api/internal/pkg/token"
)

// AuthService implements login and bearer-token resolution.
type AuthService struct {
	repo     ports.UserRepository
	hasher   *password.Hasher
	codec    *token.Codec
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *password.Hasher, codec *token.Codec, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, hasher: hasher, codec: codec, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials and issues a signed token. An unknown user
// and a wrong password are indistinguishable to the caller so the API does
// not leak which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Encode(token.Claims{ID: user.ID, Username: user.Username}, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return signed, nil
}

// Resolve turns a bearer token into the identity it was issued for. The user
// is re-fetched on every call, so deleting the backing record is sufficient
// revocation; no blocklist exists.
func (s *AuthService) Resolve(ctx context.Context, raw string) (*domain.Identity, error) {
	claims, err := s.codec.Decode(raw)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.repo.FindByUsername(ctx, claims.Username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	return &domain.Identity{ID: user.ID, Username: user.Username}, nil
}
