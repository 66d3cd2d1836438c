// Package queue хранит офлайн-изменения постов до отправки на сервер.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

// Store is the durable FIFO of pending mutations. Every change loads and
// saves the full snapshot through QueueStorage.
type Store struct {
	storage storage.QueueStorage
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewStore creates a queue over the given storage
func NewStore(st storage.QueueStorage, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		logger:  logger,
	}
}

// Enqueue добавляет мутацию в конец очереди и возвращает сохраненную запись.
// Ошибка сохранения возвращается вызывающему: запись в этом случае не добавлена.
func (s *Store) Enqueue(ctx context.Context, m models.Mutation) (models.QueuedMutation, error) {
	if m == nil {
		return models.QueuedMutation{}, fmt.Errorf("mutation is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.storage.LoadQueue(ctx)
	if err != nil {
		return models.QueuedMutation{}, fmt.Errorf("failed to load queue: %w", err)
	}

	id, err := s.storage.NextQueueID(ctx)
	if err != nil {
		return models.QueuedMutation{}, err
	}

	record := models.QueuedMutation{ID: id, Mutation: m}
	records = append(records, record)

	if err := s.storage.SaveQueue(ctx, records); err != nil {
		return models.QueuedMutation{}, fmt.Errorf("failed to persist queue: %w", err)
	}

	s.logger.Debug("Mutation queued",
		"id", id,
		"kind", m.Kind(),
		"pending", len(records))

	return record, nil
}

// List returns pending records in FIFO order
func (s *Store) List(ctx context.Context) ([]models.QueuedMutation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.storage.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}
	if records == nil {
		records = []models.QueuedMutation{}
	}
	return records, nil
}

// Len returns the number of pending records
func (s *Store) Len(ctx context.Context) (int, error) {
	records, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Remove удаляет запись по id. Неизвестный id не является ошибкой.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.storage.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}

	kept := make([]models.QueuedMutation, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	if len(kept) == len(records) {
		return nil
	}

	if err := s.storage.SaveQueue(ctx, kept); err != nil {
		return fmt.Errorf("failed to persist queue: %w", err)
	}

	s.logger.Debug("Mutation removed from queue", "id", id, "pending", len(kept))
	return nil
}

// IsDuplicate reports whether a record with the same kind and an equal
// payload is already queued.
func (s *Store) IsDuplicate(ctx context.Context, m models.Mutation) (bool, error) {
	want, err := Fingerprint(m)
	if err != nil {
		return false, err
	}

	records, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	for _, r := range records {
		got, err := Fingerprint(r.Mutation)
		if err != nil {
			return false, err
		}
		if got == want {
			return true, nil
		}
	}
	return false, nil
}

// HasPendingAction reports whether an update or delete for the post is queued
func (s *Store) HasPendingAction(ctx context.Context, postID int64) (bool, error) {
	records, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	for _, r := range records {
		if id, ok := r.Mutation.TargetID(); ok && id == postID {
			return true, nil
		}
	}
	return false, nil
}

// Fingerprint хэширует kind и каноничный JSON payload мутации.
// Равные мутации дают равные отпечатки.
func Fingerprint(m models.Mutation) ([blake2b.Size256]byte, error) {
	payload, err := models.EncodePayload(m)
	if err != nil {
		return [blake2b.Size256]byte{}, err
	}

	buf := make([]byte, 0, len(m.Kind())+1+len(payload))
	buf = append(buf, m.Kind()...)
	buf = append(buf, 0)
	buf = append(buf, payload...)

	return blake2b.Sum256(buf), nil
}
