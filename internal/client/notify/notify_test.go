package notify

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/postkeeper/internal/client/iocli"
)

func TestEvents(t *testing.T) {
	tests := []struct {
		event    Event
		kind     Kind
		severity string
		message  string
	}{
		{event: Queued(), kind: KindQueued, severity: "info",
			message: "Request queued. It will be processed when you are back online."},
		{event: Syncing(3), kind: KindSyncing, severity: "info", message: "Syncing 3 offline changes..."},
		{event: Success("Post created successfully"), kind: KindSuccess, severity: "success", message: "Post created successfully"},
		{event: Error("Post not found"), kind: KindError, severity: "error", message: "Post not found"},
		{event: Duplicate(), kind: KindDuplicate, severity: "warning",
			message: "The same change is already waiting in the offline queue."},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.event.Kind)
			assert.Equal(t, tt.severity, tt.event.Severity())
			assert.Equal(t, tt.message, tt.event.Message)
		})
	}

	assert.Equal(t, 3, Syncing(3).Count)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	sink.Notify(Error("boom"))
	sink.Notify(Duplicate())

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "msg=boom")
	assert.Contains(t, out, "kind=error")
	assert.Contains(t, out, "level=WARN")
}

func TestConsoleSink(t *testing.T) {
	var errOut strings.Builder
	mock := &iocli.IOMock{
		ErrorfFunc: func(format string, a ...any) {
			fmt.Fprintf(&errOut, format, a...)
		},
	}

	NewConsoleSink(mock).Notify(Success("Post deleted successfully"))

	assert.Equal(t, "[success] Post deleted successfully\n", errOut.String())
	assert.Len(t, mock.ErrorfCalls(), 1)
}

func TestMulti(t *testing.T) {
	var a, b Recorder
	Multi{&a, &b}.Notify(Queued())

	assert.Equal(t, []Kind{KindQueued}, a.Kinds())
	assert.Equal(t, []Kind{KindQueued}, b.Kinds())
}

func TestRecorder_Concurrent(t *testing.T) {
	var r Recorder

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Notify(Queued())
		}()
	}
	wg.Wait()

	assert.Len(t, r.Events(), 20)
	r.Reset()
	assert.Empty(t, r.Events())
}
