package repository

import "errors"

// ErrNotFound is returned by every lookup whose id (or email) matches no
// row. Call sites must branch on it explicitly; a miss is never a fault.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when inserting a user whose email is
// already taken (unique constraint on user.email).
var ErrDuplicateEmail = errors.New("email already registered")
