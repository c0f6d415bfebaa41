package application

import "errors"

// Failure taxonomy surfaced to callers. Every operation resolves to a
// success value or one of these; store failures propagate as-is.
var (
	ErrDuplicateEmail = errors.New("a user is already registered with that email")
	ErrUnknownUser    = errors.New("no user is registered with that email")
	ErrBadCredential  = errors.New("incorrect password")
	ErrNotFound       = errors.New("record not found")
	ErrForbidden      = errors.New("caller is not the creator of this record")
)
