package postgres

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campaignlab/campaign-api/internal/core/domain"
	"github.com/campaignlab/campaign-api/internal/core/ports"
	"github.com/campaignlab/campaign-api/internal/pkg/password"
)

// SeedDemoUser inserts the single demo account at startup when it does not
// exist yet. The hash is computed here so the plaintext never touches the
// database.
func SeedDemoUser(ctx context.Context, repo ports.UserRepository, hasher *password.Hasher, username, plaintext string, log zerolog.Logger) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, &domain.User{Username: username, PasswordHash: hash})
	if errors.Is(err, domain.ErrUserExists) {
		log.Debug().Str("username", username).Msg("demo user already present")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Str("username", username).Msg("demo user seeded")
	return nil
}
