package connectivity

import (
	"context"
	"log/slog"
	"time"
)

// DefaultProbeTimeout ограничивает одну проверку здоровья сервера
const DefaultProbeTimeout = 3 * time.Second

// HealthChecker is implemented by api.Client
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Detect выполняет одну проверку и возвращает начальное состояние.
// Ошибка или таймаут означают офлайн.
func Detect(ctx context.Context, checker HealthChecker, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return checker.Health(ctx) == nil
}

// Prober periodically checks the server health endpoint and feeds the result
// into a Monitor.
type Prober struct {
	checker  HealthChecker
	monitor  *Monitor
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
}

// NewProber creates a prober. timeout <= 0 uses DefaultProbeTimeout.
func NewProber(checker HealthChecker, monitor *Monitor, interval, timeout time.Duration, logger *slog.Logger) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{
		checker:  checker,
		monitor:  monitor,
		logger:   logger,
		interval: interval,
		timeout:  timeout,
	}
}

// Probe runs a single check and updates the monitor.
// Returns the observed state.
func (p *Prober) Probe(ctx context.Context) bool {
	online := Detect(ctx, p.checker, p.timeout)
	if !online {
		p.logger.Debug("Health probe failed")
	}
	p.monitor.Set(online)
	return online
}

// Run probes on every tick until ctx is cancelled
func (p *Prober) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}
