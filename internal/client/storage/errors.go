package storage

import "errors"

// Common client storage errors
var (
	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrCorruptSnapshot indicates that a persisted snapshot cannot be decoded
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
