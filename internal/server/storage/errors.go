package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound indicates that post was not found in storage
	ErrPostNotFound = errors.New("post not found")
)
