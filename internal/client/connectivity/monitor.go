// Package connectivity отслеживает доступность сервера.
package connectivity

import (
	"log/slog"
	"sync"
)

// Listener receives the new state after each transition
type Listener func(online bool)

// Monitor stores the current connectivity state and notifies subscribers
// synchronously, once per actual transition. Listeners must not call Set.
type Monitor struct {
	logger    *slog.Logger
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64
	mu        sync.Mutex // защищает online и listeners
	emitMu    sync.Mutex // сериализует переходы вместе с уведомлениями
	online    bool
}

// NewMonitor creates a monitor with the given initial state
func NewMonitor(online bool, logger *slog.Logger) *Monitor {
	return &Monitor{
		online:    online,
		logger:    logger,
		listeners: make(map[uint64]Listener),
	}
}

// Online returns the current state
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set обновляет состояние. Возвращает true, если произошел переход.
// Повторный одинаковый сигнал ничего не делает.
func (m *Monitor) Set(online bool) bool {
	m.emitMu.Lock()
	defer m.emitMu.Unlock()

	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return false
	}
	m.online = online
	listeners := make([]Listener, 0, len(m.order))
	for _, id := range m.order {
		listeners = append(listeners, m.listeners[id])
	}
	m.mu.Unlock()

	m.logger.Info("Connectivity changed", "online", online)

	for _, l := range listeners {
		l(online)
	}
	return true
}

// Subscribe регистрирует слушателя. Возвращаемая функция отписывает его,
// повторный вызов безопасен.
func (m *Monitor) Subscribe(l Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.listeners[id] = l
	m.order = append(m.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()

			delete(m.listeners, id)
			for i, v := range m.order {
				if v == id {
					m.order = append(m.order[:i], m.order[i+1:]...)
					break
				}
			}
		})
	}
}
