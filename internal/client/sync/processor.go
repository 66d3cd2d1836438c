package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/iudanet/postkeeper/internal/client/api"
	"github.com/iudanet/postkeeper/internal/client/notify"
	"github.com/iudanet/postkeeper/internal/client/queue"
	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

//go:generate moq -out processor_mock.go . Processor

// Processor определяет интерфейс обработчика офлайн-очереди
type Processor interface {
	// Drain отправляет все записи очереди на сервер в порядке FIFO.
	// Вызов во время уже идущей обработки ничего не делает.
	Drain(ctx context.Context) (*DrainResult, error)

	// Processing reports whether a drain is in progress
	Processing() bool
}

// Refresher reloads the authoritative posts list after a drain
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshFunc adapts a function to Refresher
type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refresh(ctx context.Context) error { return f(ctx) }

// DrainResult contains drain outcome
type DrainResult struct {
	Total     int  // количество записей в очереди на момент старта
	Succeeded int  // отправлены и удалены из очереди
	Failed    int  // остались в очереди до следующей попытки
	Dropped   int  // отклонены сервером окончательно и удалены
	Skipped   bool // обработка уже шла, ничего не сделано
}

// Option configures a processor
type Option func(*processor)

// WithRecordTimeout ограничивает время отправки одной записи.
// Превышение считается обычной ошибкой.
func WithRecordTimeout(d time.Duration) Option {
	return func(p *processor) {
		p.recordTimeout = d
	}
}

type processor struct {
	queue           *queue.Store
	apiClient       api.ClientAPI
	refresher       Refresher
	metadataStorage storage.MetadataStorage
	sink            notify.Sink
	logger          *slog.Logger
	now             func() time.Time
	recordTimeout   time.Duration
	running         atomic.Bool
}

// NewProcessor creates a queue processor
func NewProcessor(
	q *queue.Store,
	apiClient api.ClientAPI,
	refresher Refresher,
	metadataStorage storage.MetadataStorage,
	sink notify.Sink,
	logger *slog.Logger,
	opts ...Option,
) Processor {
	p := &processor{
		queue:           q,
		apiClient:       apiClient,
		refresher:       refresher,
		metadataStorage: metadataStorage,
		sink:            sink,
		logger:          logger,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *processor) Processing() bool {
	return p.running.Load()
}

// Drain replays queued mutations.
// 1. Empty queue: nothing happens
// 2. Each record is sent in FIFO order and removed right after success
// 3. A failed record stays queued, processing continues with the next one
// 4. The cached collection is refreshed if anything succeeded
func (p *processor) Drain(ctx context.Context) (*DrainResult, error) {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Debug("Drain already in progress, skipping")
		return &DrainResult{Skipped: true}, nil
	}
	defer p.running.Store(false)

	records, err := p.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read offline queue: %w", err)
	}

	result := &DrainResult{Total: len(records)}
	if len(records) == 0 {
		return result, nil
	}

	p.logger.Info("Draining offline queue", "count", len(records))
	p.sink.Notify(notify.Syncing(len(records)))

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			// Оставшиеся записи сохраняются для следующей попытки
			result.Failed += result.Total - result.Succeeded - result.Failed - result.Dropped
			p.finish(ctx, result)
			return result, err
		}

		err := p.replay(ctx, record.Mutation)
		switch classify(record.Mutation, err) {
		case outcomeSucceeded:
			result.Succeeded++
			if err != nil {
				p.logger.Debug("Post already deleted on server", "record_id", record.ID)
			}
			p.remove(ctx, record)

		case outcomeDropped:
			result.Dropped++
			p.logger.Warn("Dropping rejected queued mutation",
				"record_id", record.ID,
				"kind", record.Mutation.Kind(),
				"error", err)
			p.sink.Notify(notify.Error(fmt.Sprintf("Discarded offline change (%s): %s",
				record.Mutation.Describe(), api.ServerMessage(err))))
			p.remove(ctx, record)

		default:
			result.Failed++
			p.logger.Warn("Failed to replay queued mutation",
				"record_id", record.ID,
				"kind", record.Mutation.Kind(),
				"error", err)
		}
	}

	p.finish(ctx, result)
	return result, nil
}

// finish уведомляет об итоге и обновляет кэш постов
func (p *processor) finish(ctx context.Context, result *DrainResult) {
	p.logger.Info("Offline queue drained",
		"total", result.Total,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"dropped", result.Dropped)

	if result.Succeeded > 0 {
		p.sink.Notify(notify.Success(fmt.Sprintf("Synced %d offline changes", result.Succeeded)))
	}
	if result.Dropped > 0 {
		p.sink.Notify(notify.Error(fmt.Sprintf("Discarded %d of %d offline changes rejected by the server",
			result.Dropped, result.Total)))
	}
	if result.Failed > 0 {
		p.sink.Notify(notify.Error(fmt.Sprintf("Failed to sync %d of %d offline changes. Will retry on the next sync.",
			result.Failed, result.Total)))
	}

	if result.Succeeded+result.Dropped > 0 {
		if err := p.metadataStorage.SaveLastSyncTimestamp(ctx, p.now().Unix()); err != nil {
			p.logger.Warn("Failed to save last sync timestamp", "error", err)
		}
	}

	if result.Succeeded > 0 && p.refresher != nil {
		if err := p.refresher.Refresh(ctx); err != nil {
			// Не прерываем обработку: кэш останется помеченным как устаревший
			p.logger.Warn("Failed to refresh posts after drain", "error", err)
		}
	}
}

func (p *processor) remove(ctx context.Context, record models.QueuedMutation) {
	if err := p.queue.Remove(ctx, record.ID); err != nil {
		p.logger.Error("Failed to remove replayed mutation from queue",
			"record_id", record.ID,
			"error", err)
	}
}

func (p *processor) replay(ctx context.Context, m models.Mutation) error {
	if p.recordTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.recordTimeout)
		defer cancel()
	}

	switch m := m.(type) {
	case models.CreatePost:
		_, err := p.apiClient.CreatePost(ctx, m.PostDraft)
		return err
	case models.UpdatePost:
		_, err := p.apiClient.UpdatePost(ctx, m.ID, m.PostPatch)
		return err
	case models.DeletePost:
		return p.apiClient.DeletePost(ctx, m.ID)
	default:
		return fmt.Errorf("unsupported mutation %T", m)
	}
}

type outcome int

const (
	outcomeRetained outcome = iota
	outcomeSucceeded
	outcomeDropped
)

// classify решает судьбу записи после попытки отправки.
// Удаление уже удаленного поста считается успехом.
// NotFound и ошибки валидации для create/update не исправятся повтором.
func classify(m models.Mutation, err error) outcome {
	if err == nil {
		return outcomeSucceeded
	}

	notFound := errors.Is(err, api.ErrNotFound)
	if m.Kind() == models.MutationDelete {
		if notFound {
			return outcomeSucceeded
		}
		return outcomeRetained
	}

	if notFound || errors.Is(err, api.ErrValidation) {
		return outcomeDropped
	}
	return outcomeRetained
}
