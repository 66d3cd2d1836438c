package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/internal/client/api"
	"github.com/iudanet/postkeeper/internal/client/notify"
	"github.com/iudanet/postkeeper/internal/client/queue"
	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/postkeeper/internal/models"
)

type testEnv struct {
	queue     *queue.Store
	api       *api.ClientAPIMock
	metadata  *storage.MetadataStorageMock
	recorder  *notify.Recorder
	refreshes int
	processor *processor
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()

	db, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		queue:    queue.NewStore(db, logger),
		api:      &api.ClientAPIMock{},
		recorder: &notify.Recorder{},
		metadata: &storage.MetadataStorageMock{
			SaveLastSyncTimestampFunc: func(ctx context.Context, timestamp int64) error {
				return nil
			},
		},
	}

	refresher := RefreshFunc(func(context.Context) error {
		env.refreshes++
		return nil
	})

	env.processor = NewProcessor(env.queue, env.api, refresher, env.metadata, env.recorder, logger, opts...).(*processor)
	return env
}

func (e *testEnv) enqueue(t *testing.T, mutations ...models.Mutation) []models.QueuedMutation {
	t.Helper()
	records := make([]models.QueuedMutation, 0, len(mutations))
	for _, m := range mutations {
		r, err := e.queue.Enqueue(context.Background(), m)
		require.NoError(t, err)
		records = append(records, r)
	}
	return records
}

func (e *testEnv) pending(t *testing.T) []models.QueuedMutation {
	t.Helper()
	records, err := e.queue.List(context.Background())
	require.NoError(t, err)
	return records
}

func createMutation(title string) models.CreatePost {
	return models.CreatePost{PostDraft: models.PostDraft{Title: title, Body: "body", UserID: 1}}
}

func statusErr(code int, msg string) error {
	return &api.StatusError{StatusCode: code, Message: msg}
}

func TestDrain_EmptyQueue(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.processor.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &DrainResult{}, result)
	assert.Empty(t, env.recorder.Events())
	assert.Equal(t, 0, env.refreshes)
	assert.Empty(t, env.metadata.SaveLastSyncTimestampCalls())
}

func TestDrain_ReplaysInFIFOOrder(t *testing.T) {
	env := newTestEnv(t)

	var calls []string
	env.api.CreatePostFunc = func(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
		calls = append(calls, "create "+draft.Title)
		return &models.Post{ID: 10, Title: draft.Title}, nil
	}
	env.api.UpdatePostFunc = func(ctx context.Context, id int64, patch models.PostPatch) (*models.Post, error) {
		calls = append(calls, "update "+*patch.Title)
		return &models.Post{ID: id}, nil
	}
	env.api.DeletePostFunc = func(ctx context.Context, id int64) error {
		calls = append(calls, "delete")
		return nil
	}

	env.enqueue(t,
		createMutation("first"),
		models.UpdatePost{ID: 1, PostPatch: models.PostPatch{Title: models.StringPtr("second")}},
		models.DeletePost{ID: 1},
		createMutation("fourth"),
	)

	result, err := env.processor.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"create first", "update second", "delete", "create fourth"}, calls)
	assert.Equal(t, &DrainResult{Total: 4, Succeeded: 4}, result)
	assert.Empty(t, env.pending(t))
	assert.Equal(t, 1, env.refreshes)
	assert.Len(t, env.metadata.SaveLastSyncTimestampCalls(), 1)
	assert.Equal(t, []notify.Kind{notify.KindSyncing, notify.KindSuccess}, env.recorder.Kinds())
	assert.Equal(t, 4, env.recorder.Events()[0].Count)
}

func TestDrain_PartialFailureIsolation(t *testing.T) {
	env := newTestEnv(t)

	env.api.CreatePostFunc = func(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
		if draft.Title == "b" {
			return nil, errors.New("connection refused")
		}
		return &models.Post{ID: 1}, nil
	}

	records := env.enqueue(t, createMutation("a"), createMutation("b"), createMutation("c"))

	result, err := env.processor.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &DrainResult{Total: 3, Succeeded: 2, Failed: 1}, result)
	assert.Len(t, env.api.CreatePostCalls(), 3)

	pending := env.pending(t)
	require.Len(t, pending, 1)
	assert.Equal(t, records[1].ID, pending[0].ID)

	// И успехи, и ошибки попадают в итоговые уведомления
	events := env.recorder.Events()
	assert.Equal(t, []notify.Kind{notify.KindSyncing, notify.KindSuccess, notify.KindError}, env.recorder.Kinds())
	assert.Equal(t, "Syncing 3 offline changes...", events[0].Message)
	assert.Equal(t, "Synced 2 offline changes", events[1].Message)
	assert.Equal(t, "Failed to sync 1 of 3 offline changes. Will retry on the next sync.", events[2].Message)
	assert.Equal(t, 1, env.refreshes)
}

func TestDrain_AllFailedKeepsQueueAndSkipsRefresh(t *testing.T) {
	env := newTestEnv(t)

	env.api.DeletePostFunc = func(ctx context.Context, id int64) error {
		return statusErr(http.StatusInternalServerError, "An unexpected error occurred")
	}
	env.enqueue(t, models.DeletePost{ID: 1}, models.DeletePost{ID: 2})

	result, err := env.processor.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &DrainResult{Total: 2, Failed: 2}, result)
	assert.Len(t, env.pending(t), 2)
	assert.Equal(t, []notify.Kind{notify.KindSyncing, notify.KindError}, env.recorder.Kinds())
	assert.Equal(t, 0, env.refreshes)
	assert.Empty(t, env.metadata.SaveLastSyncTimestampCalls())
}

func TestDrain_DeleteNotFoundCountsAsSuccess(t *testing.T) {
	env := newTestEnv(t)

	env.api.DeletePostFunc = func(ctx context.Context, id int64) error {
		return statusErr(http.StatusNotFound, "Post not found")
	}
	env.enqueue(t, models.DeletePost{ID: 5})

	result, err := env.processor.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &DrainResult{Total: 1, Succeeded: 1}, result)
	assert.Empty(t, env.pending(t))
}

func TestDrain_TerminalFailuresAreDropped(t *testing.T) {
	tests := []struct {
		mutation models.Mutation
		err      error
		name     string
	}{
		{
			name:     "update of missing post",
			mutation: models.UpdatePost{ID: 9, PostPatch: models.PostPatch{Title: models.StringPtr("x")}},
			err:      statusErr(http.StatusNotFound, "Post not found"),
		},
		{
			name:     "create rejected by validation",
			mutation: createMutation("t"),
			err:      statusErr(http.StatusBadRequest, "userId: User not found"),
		},
		{
			name:     "create for missing user",
			mutation: createMutation("t"),
			err:      statusErr(http.StatusNotFound, "User not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.api.CreatePostFunc = func(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
				return nil, tt.err
			}
			env.api.UpdatePostFunc = func(ctx context.Context, id int64, patch models.PostPatch) (*models.Post, error) {
				return nil, tt.err
			}
			env.enqueue(t, tt.mutation)

			result, err := env.processor.Drain(context.Background())
			require.NoError(t, err)

			assert.Equal(t, &DrainResult{Total: 1, Dropped: 1}, result)
			assert.Empty(t, env.pending(t))
			assert.Equal(t, 0, env.refreshes)

			events := env.recorder.Events()
			require.Len(t, events, 3)
			assert.Equal(t, notify.KindError, events[1].Kind)
			assert.Contains(t, events[1].Message, api.ServerMessage(tt.err))
			assert.Equal(t, notify.KindError, events[2].Kind)
			assert.Equal(t, "Discarded 1 of 1 offline changes rejected by the server", events[2].Message)
		})
	}
}

func TestDrain_NoReentrancy(t *testing.T) {
	env := newTestEnv(t)

	started := make(chan struct{})
	release := make(chan struct{})
	env.api.DeletePostFunc = func(ctx context.Context, id int64) error {
		close(started)
		<-release
		return nil
	}
	env.enqueue(t, models.DeletePost{ID: 1})

	var wg stdsync.WaitGroup
	wg.Add(1)
	var first *DrainResult
	go func() {
		defer wg.Done()
		first, _ = env.processor.Drain(context.Background())
	}()

	<-started
	assert.True(t, env.processor.Processing())

	second, err := env.processor.Drain(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	close(release)
	wg.Wait()

	assert.Equal(t, 1, first.Succeeded)
	assert.False(t, env.processor.Processing())
	assert.Len(t, env.api.DeletePostCalls(), 1)
}

func TestDrain_RecordTimeout(t *testing.T) {
	env := newTestEnv(t, WithRecordTimeout(20*time.Millisecond))

	env.api.DeletePostFunc = func(ctx context.Context, id int64) error {
		if id == 1 {
			<-ctx.Done()
			return ctx.Err()
		}
		return nil
	}
	env.enqueue(t, models.DeletePost{ID: 1}, models.DeletePost{ID: 2})

	result, err := env.processor.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &DrainResult{Total: 2, Succeeded: 1, Failed: 1}, result)
	pending := env.pending(t)
	require.Len(t, pending, 1)
	assert.Equal(t, models.DeletePost{ID: 1}, pending[0].Mutation)
}

func TestDrain_CancelledContextKeepsRemaining(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	env.api.DeletePostFunc = func(context.Context, int64) error {
		cancel()
		return nil
	}
	env.enqueue(t, models.DeletePost{ID: 1}, models.DeletePost{ID: 2}, models.DeletePost{ID: 3})

	result, err := env.processor.Drain(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, &DrainResult{Total: 3, Succeeded: 1, Failed: 2}, result)
	assert.Len(t, env.pending(t), 2)
	assert.False(t, env.processor.Processing())
}

func TestDrain_RefreshErrorIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	env.processor.refresher = RefreshFunc(func(context.Context) error {
		return errors.New("offline again")
	})
	env.api.DeletePostFunc = func(context.Context, int64) error { return nil }
	env.enqueue(t, models.DeletePost{ID: 1})

	result, err := env.processor.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
}

func TestClassify(t *testing.T) {
	update := models.UpdatePost{ID: 1}
	del := models.DeletePost{ID: 1}
	create := createMutation("x")

	tests := []struct {
		mutation models.Mutation
		err      error
		name     string
		want     outcome
	}{
		{name: "success", mutation: create, want: outcomeSucceeded},
		{name: "delete not found", mutation: del, err: statusErr(404, "Post not found"), want: outcomeSucceeded},
		{name: "delete server error", mutation: del, err: statusErr(500, "boom"), want: outcomeRetained},
		{name: "delete validation", mutation: del, err: statusErr(400, "bad"), want: outcomeRetained},
		{name: "update not found", mutation: update, err: statusErr(404, "Post not found"), want: outcomeDropped},
		{name: "create validation", mutation: create, err: statusErr(400, "title: Title is required"), want: outcomeDropped},
		{name: "network error", mutation: create, err: errors.New("dial tcp: refused"), want: outcomeRetained},
		{name: "rate limited", mutation: update, err: statusErr(429, "Too many requests"), want: outcomeRetained},
		{name: "timeout", mutation: update, err: context.DeadlineExceeded, want: outcomeRetained},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.mutation, tt.err))
		})
	}
}
