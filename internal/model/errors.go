package model

import "errors"

// Common errors used across the application
var (
	// Store errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrMetaNotFound      = errors.New("cache metadata not found")
	ErrOwnershipNotFound = errors.New("ownership stat not found")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrStoreIO           = errors.New("store operation failed")

	// Upstream errors
	ErrInvalidResponseFormat = errors.New("invalid upstream response format")
	ErrLeagueNotFound        = errors.New("league not found")
)
