package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthorized = errors.New("unauthorized")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models the stored demo account. PasswordHash never leaves the
// credential store except for verification at login.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Identity is the public-safe projection of User carried through a request
// after the bearer token has been resolved. It is derived fresh on every
// request and never cached beyond it.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
