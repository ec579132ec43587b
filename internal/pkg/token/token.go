// Package token encodes and decodes the signed bearer tokens issued at login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure mode for Decode. Malformed, expired,
// badly signed, and claim-less tokens are deliberately indistinguishable to
// the caller; they all end up as a 401.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 15 * time.Minute

// Claims is the payload embedded in every issued token.
type Claims struct {
	ID       int64
	Username string
}

// Codec signs and verifies HS256 tokens with a fixed server secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode signs cl with an expiry of now + ttl. A non-positive ttl falls back
// to 15 minutes.
func (c *Codec) Encode(cl Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       cl.ID,
		"username": cl.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return t.SignedString(c.secret)
}

// Decode verifies the signature and expiry of raw and extracts its claims.
func (c *Codec) Decode(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	// jwt.MapClaims decodes numbers as float64.
	id, ok := claims["id"].(float64)
	if !ok || id == 0 {
		return Claims{}, ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{ID: int64(id), Username: username}, nil
}
