package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

func TestLoadQueue_Empty(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	records, err := store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSaveAndLoadQueue(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	records := []models.QueuedMutation{
		{ID: 1, Mutation: models.CreatePost{PostDraft: models.PostDraft{Title: "t", Body: "b", UserID: 1}}},
		{ID: 2, Mutation: models.UpdatePost{ID: 4, PostPatch: models.PostPatch{Body: models.StringPtr("new")}}},
		{ID: 3, Mutation: models.DeletePost{ID: 4}},
	}

	require.NoError(t, store.SaveQueue(ctx, records))

	loaded, err := store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	// Снимок перезаписывается целиком
	require.NoError(t, store.SaveQueue(ctx, records[2:]))
	loaded, err = store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, records[2:], loaded)

	require.NoError(t, store.SaveQueue(ctx, nil))
	loaded, err = store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveQueue_PersistedLayout(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveQueue(ctx, []models.QueuedMutation{
		{ID: 7, Mutation: models.DeletePost{ID: 3}},
	}))

	var raw []byte
	err := store.db.View(func(tx *bbolt.Tx) error {
		raw = append(raw, tx.Bucket(bucketQueue).Get([]byte(keyOfflineQueue))...)
		return nil
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":7,"kind":"delete","payload":3}]`, string(raw))
}

func TestLoadQueue_Corrupt(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).Put([]byte(keyOfflineQueue), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.LoadQueue(ctx)
	assert.ErrorIs(t, err, storage.ErrCorruptSnapshot)
}

func TestNextQueueID_Monotonic(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "queue.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	first, err := store.NextQueueID(ctx)
	require.NoError(t, err)
	second, err := store.NextQueueID(ctx)
	require.NoError(t, err)
	assert.Greater(t, second, first)
	require.NoError(t, store.Close())

	// Последовательность переживает перезапуск
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	third, err := store.NextQueueID(ctx)
	require.NoError(t, err)
	assert.Greater(t, third, second)
}

func TestQueue_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketQueue)
	})
	require.NoError(t, err)

	_, err = store.LoadQueue(ctx)
	assert.Contains(t, err.Error(), "queue bucket not found")

	err = store.SaveQueue(ctx, nil)
	assert.Contains(t, err.Error(), "queue bucket not found")

	_, err = store.NextQueueID(ctx)
	assert.Contains(t, err.Error(), "queue bucket not found")
}
