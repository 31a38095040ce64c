package domain

import "errors"

var (
	// upstream
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedContent    = errors.New("malformed content")
	ErrCredentialInvalid   = errors.New("credential invalid")

	// delivery
	ErrDeliveryFailure = errors.New("delivery failure")

	// directory
	ErrBlacklisted      = errors.New("account is blacklisted")
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")
	ErrNotFound         = errors.New("not found")

	// commands
	ErrInvalidArgument = errors.New("invalid argument")
)
