package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

// keyOfflineQueue ключ, под которым хранится весь снимок очереди
const keyOfflineQueue = "offline-queue"

// LoadQueue читает снимок очереди.
// Отсутствующий или пустой снимок дает пустую очередь.
func (s *Storage) LoadQueue(ctx context.Context) ([]models.QueuedMutation, error) {
	var data []byte

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		if raw := bucket.Get([]byte(keyOfflineQueue)); raw != nil {
			// bbolt возвращает память, валидную только внутри транзакции
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	records := []models.QueuedMutation{}
	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrCorruptSnapshot, err)
	}

	return records, nil
}

// SaveQueue сохраняет снимок очереди целиком
func (s *Storage) SaveQueue(ctx context.Context, records []models.QueuedMutation) error {
	if records == nil {
		records = []models.QueuedMutation{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	err = s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		return bucket.Put([]byte(keyOfflineQueue), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}

	return nil
}

// NextQueueID выдает следующий id записи из последовательности bucket
func (s *Storage) NextQueueID(ctx context.Context) (int64, error) {
	var id uint64

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		var err error
		id, err = bucket.NextSequence()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate queue id: %w", err)
	}

	return int64(id), nil
}
