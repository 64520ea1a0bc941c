package domain

import "errors"

// Sentinel errors for the service and repository layers - use with errors.Is().
//
// ErrNotFound deliberately covers both "resource does not exist" and "resource
// owned by another user": handlers map both to 404 so callers cannot probe for
// the existence of other users' sessions.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream failure")
)
