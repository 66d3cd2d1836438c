package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/postkeeper/internal/client/api"
	"github.com/iudanet/postkeeper/internal/client/cache"
	"github.com/iudanet/postkeeper/internal/client/connectivity"
	"github.com/iudanet/postkeeper/internal/client/data"
	"github.com/iudanet/postkeeper/internal/client/iocli"
	"github.com/iudanet/postkeeper/internal/client/notify"
	"github.com/iudanet/postkeeper/internal/client/queue"
	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/postkeeper/internal/client/sync"
	"github.com/iudanet/postkeeper/internal/config"
	"github.com/iudanet/postkeeper/internal/models"
)

// pendingQueue отдает содержимое офлайн-очереди для вывода
type pendingQueue interface {
	List(ctx context.Context) ([]models.QueuedMutation, error)
	HasPendingAction(ctx context.Context, postID int64) (bool, error)
}

type Cli struct {
	io              iocli.IO
	dataService     data.Service
	processor       sync.Processor
	queue           pendingQueue
	metadataStorage storage.MetadataStorage
	monitor         *connectivity.Monitor
	prober          *connectivity.Prober // nil при --offline
	logger          *slog.Logger
	closeFn         func() error
	serverURL       string
}

// Open собирает клиент: локальное хранилище, API клиент, очередь,
// кэш постов и обработчик очереди.
func Open(ctx context.Context, cfg *config.Client, io iocli.IO, logger *slog.Logger) (*Cli, error) {
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(cfg.ServerURL, cfg.Timeout)

	// Начальное состояние сети: --offline или одна проверка здоровья сервера
	online := false
	if !cfg.Offline {
		online = connectivity.Detect(ctx, apiClient, 0)
	}
	monitor := connectivity.NewMonitor(online, logger)

	var prober *connectivity.Prober
	if !cfg.Offline {
		prober = connectivity.NewProber(apiClient, monitor, cfg.ProbeInterval, 0, logger)
	}

	// В терминале уведомления печатаются, в скриптах уходят в лог.
	// С уровнем debug терминальные уведомления дублируются в лог.
	var sink notify.Sink = notify.NewLogSink(logger)
	if io.IsInteractive() {
		sink = notify.NewConsoleSink(io)
		if logger.Enabled(ctx, slog.LevelDebug) {
			sink = notify.Multi{sink, notify.NewLogSink(logger)}
		}
	}
	q := queue.NewStore(boltStorage, logger)

	// Обработчик очереди и data сервис ссылаются друг на друга:
	// сервис отправляет очередь перед прямой записью, обработчик обновляет кэш сервиса
	var dataService data.Service
	processor := sync.NewProcessor(q, apiClient, sync.RefreshFunc(func(ctx context.Context) error {
		return dataService.Refresh(ctx)
	}), boltStorage, sink, logger, sync.WithRecordTimeout(cfg.Timeout))

	dataService = data.NewService(cache.New(), q, apiClient, monitor, processor, boltStorage, boltStorage, sink, logger)
	if err := dataService.Load(ctx); err != nil {
		logger.Warn("Failed to load cached posts", "error", err)
	}

	return &Cli{
		io:              io,
		dataService:     dataService,
		processor:       processor,
		queue:           q,
		metadataStorage: boltStorage,
		monitor:         monitor,
		prober:          prober,
		logger:          logger,
		closeFn:         boltStorage.Close,
		serverURL:       cfg.ServerURL,
	}, nil
}

// Close closes the local database
func (c *Cli) Close() error {
	if c.closeFn == nil {
		return nil
	}
	return c.closeFn()
}
