package ports

import (
	"context"

	"github.com/campaignlab/campaign-api/internal/core/domain"
)

// AuthService covers both halves of the authentication flow: issuing a token
// at login and resolving a presented token back into an identity.
type AuthService interface {
	// Login verifies username/password and returns a signed bearer token.
	// Unknown users and wrong passwords both fail with ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)

	// Resolve decodes a bearer token and re-fetches the user it names.
	// Any decode failure, and a token whose user no longer exists, fail with
	// ErrUnauthorized. Deleting a user record therefore revokes its tokens.
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}
