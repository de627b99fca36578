package domain

import "errors"

var (
	// ErrInvalidArgument marks caller bugs such as out-of-range coordinates or a negative window.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrProfileNotFound = errors.New("profile not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidToken    = errors.New("invalid token")
)
