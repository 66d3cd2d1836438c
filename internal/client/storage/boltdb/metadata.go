package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTimestamp    = "last_sync_timestamp"
	keyLastRefreshTimestamp = "last_refresh_timestamp"
)

// SaveLastSyncTimestamp saves the timestamp of the last queue drain
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if err := s.putTimestamp(keyLastSyncTimestamp, timestamp); err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}
	return nil
}

// GetLastSyncTimestamp retrieves the timestamp of the last queue drain
// Returns 0 if no drain has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	ts, err := s.getTimestamp(keyLastSyncTimestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}
	return ts, nil
}

// SaveLastRefreshTimestamp saves the timestamp of the last posts refresh
func (s *Storage) SaveLastRefreshTimestamp(ctx context.Context, timestamp int64) error {
	if err := s.putTimestamp(keyLastRefreshTimestamp, timestamp); err != nil {
		return fmt.Errorf("failed to save last refresh timestamp: %w", err)
	}
	return nil
}

// GetLastRefreshTimestamp returns 0 if posts were never fetched
func (s *Storage) GetLastRefreshTimestamp(ctx context.Context) (int64, error) {
	ts, err := s.getTimestamp(keyLastRefreshTimestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to get last refresh timestamp: %w", err)
	}
	return ts, nil
}

func (s *Storage) putTimestamp(key string, timestamp int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		return bucket.Put([]byte(key), timestampBytes)
	})
}

func (s *Storage) getTimestamp(key string) (int64, error) {
	var timestamp int64

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(key))
		if timestampBytes == nil {
			// Значение еще не сохранялось
			return nil
		}
		if len(timestampBytes) != 8 {
			return fmt.Errorf("invalid timestamp length %d", len(timestampBytes))
		}

		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	return timestamp, err
}
