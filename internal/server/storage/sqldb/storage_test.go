package sqldb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/internal/config"
	"github.com/iudanet/postkeeper/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, config.DriverSQLite, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage, id int64, name string) *models.User {
	now := time.Now().UTC()
	user := &models.User{
		ID:        id,
		Name:      name,
		Username:  name + "_login",
		Email:     name + "@example.com",
		Phone:     models.StringPtr("555-0100"),
		Address:   json.RawMessage(`{"city":"Gwenborough"}`),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.createUser(ctx, s.db, user))
	return user
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(context.Background(), "mysql", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestStorage_Ping(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, config.DriverSQLite, s.Driver())
}

func TestStorage_Seed(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	seeded, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	count, err := s.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, count)

	// Последний пост набора считается самым новым
	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	assert.Equal(t, "maxime id vitae nihil numquam", posts[0].Title)
	require.NotNil(t, posts[0].User)
	assert.Equal(t, "Patricia Lebsack", posts[0].User.Name)

	// Повторный запуск ничего не добавляет
	seeded, err = s.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	count, err = s.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}
