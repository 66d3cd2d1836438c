package sync

import (
	"context"
	"log/slog"

	"github.com/iudanet/postkeeper/internal/client/connectivity"
)

// Watch запускает обработку очереди при каждом переходе в онлайн
// и один раз на старте, если сервер уже доступен. Блокирует до отмены ctx.
func Watch(ctx context.Context, p Processor, monitor *connectivity.Monitor, logger *slog.Logger) {
	trigger := make(chan struct{}, 1)
	kick := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	unsubscribe := monitor.Subscribe(func(online bool) {
		if online {
			kick()
		}
	})
	defer unsubscribe()

	if monitor.Online() {
		kick()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-trigger:
			result, err := p.Drain(ctx)
			if err != nil {
				logger.Error("Queue drain failed", "error", err)
				continue
			}
			if result.Total > 0 {
				logger.Info("Queue drain finished",
					"succeeded", result.Succeeded,
					"failed", result.Failed,
					"dropped", result.Dropped)
			}
		}
	}
}
