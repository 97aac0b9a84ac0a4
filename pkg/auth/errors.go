package auth

import "errors"

var (
	// ErrEmailTaken is returned by Register when the email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by Verify for malformed, tampered or
	// otherwise unverifiable tokens.
	ErrInvalidToken = errors.New("invalid token")
)
