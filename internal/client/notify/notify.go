// Package notify доставляет пользователю уведомления об офлайн-изменениях.
// Уведомления никогда не влияют на ход выполнения.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/postkeeper/internal/client/iocli"
)

// Kind тип уведомления
type Kind string

const (
	KindQueued    Kind = "queued"
	KindSyncing   Kind = "syncing"
	KindSuccess   Kind = "success"
	KindError     Kind = "error"
	KindDuplicate Kind = "duplicate-suppressed"
)

// Event is a single notification
type Event struct {
	Kind    Kind
	Message string
	Count   int // только для syncing
}

// Severity returns the display level of the event
func (e Event) Severity() string {
	switch e.Kind {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindDuplicate:
		return "warning"
	default:
		return "info"
	}
}

func Queued() Event {
	return Event{Kind: KindQueued, Message: "Request queued. It will be processed when you are back online."}
}

func Syncing(count int) Event {
	return Event{Kind: KindSyncing, Count: count, Message: fmt.Sprintf("Syncing %d offline changes...", count)}
}

func Success(message string) Event {
	return Event{Kind: KindSuccess, Message: message}
}

func Error(message string) Event {
	return Event{Kind: KindError, Message: message}
}

func Duplicate() Event {
	return Event{Kind: KindDuplicate, Message: "The same change is already waiting in the offline queue."}
}

// Sink receives notifications
type Sink interface {
	Notify(e Event)
}

// LogSink пишет уведомления в slog
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(e Event) {
	level := slog.LevelInfo
	switch e.Kind {
	case KindError:
		level = slog.LevelError
	case KindDuplicate:
		level = slog.LevelWarn
	}
	s.logger.Log(context.Background(), level, e.Message, "kind", e.Kind)
}

// ConsoleSink prints notifications to the terminal error stream
type ConsoleSink struct {
	io iocli.IO
}

func NewConsoleSink(io iocli.IO) *ConsoleSink {
	return &ConsoleSink{io: io}
}

func (s *ConsoleSink) Notify(e Event) {
	s.io.Errorf("[%s] %s\n", e.Severity(), e.Message)
}

// Multi fans out each event to every sink in order
type Multi []Sink

func (m Multi) Notify(e Event) {
	for _, s := range m {
		s.Notify(e)
	}
}

// Recorder запоминает события. Безопасен для конкурентного использования.
type Recorder struct {
	events []Event
	mu     sync.Mutex
}

func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Kinds returns kinds of recorded events in order
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]Kind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// Reset drops recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
