package service

import "errors"

var (
	// ErrEmailTaken means a registration reused an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; login reports them identically.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownAuthor means a post creation named a user that does not
	// exist in the user store.
	ErrUnknownAuthor = errors.New("author does not exist")

	// ErrInvalidSession means a session cookie failed signature or
	// expiry checks, or its user no longer exists.
	ErrInvalidSession = errors.New("invalid session")
)
