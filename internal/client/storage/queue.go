package storage

import (
	"context"

	"github.com/iudanet/postkeeper/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage persists the offline queue as one snapshot
type QueueStorage interface {
	// LoadQueue returns the saved records in FIFO order.
	// Returns empty slice if nothing was saved yet.
	LoadQueue(ctx context.Context) ([]models.QueuedMutation, error)

	// SaveQueue replaces the whole snapshot
	SaveQueue(ctx context.Context, records []models.QueuedMutation) error

	// NextQueueID allocates a new record id. Ids grow monotonically
	// and are never reused, even after restart.
	NextQueueID(ctx context.Context) (int64, error)
}
