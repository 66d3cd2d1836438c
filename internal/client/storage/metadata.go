package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the unix time of the last queue drain
	// that replayed at least one record
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp returns 0 if the queue has never been drained
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// SaveLastRefreshTimestamp saves the unix time of the last posts refresh
	SaveLastRefreshTimestamp(ctx context.Context, timestamp int64) error

	// GetLastRefreshTimestamp returns 0 if posts were never fetched
	GetLastRefreshTimestamp(ctx context.Context) (int64, error)
}
