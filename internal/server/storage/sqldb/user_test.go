package sqldb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/internal/server/storage"
)

func TestUserStorage_ListUsers(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	createTestUser(t, ctx, s, 1, "zoe")
	createTestUser(t, ctx, s, 2, "adam")

	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "adam", users[0].Name)
	assert.Equal(t, "zoe", users[1].Name)
}

func TestUserStorage_GetUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	created := createTestUser(t, ctx, s, 7, "leanne")

	tests := []struct {
		wantError error
		name      string
		id        int64
	}{
		{name: "existing user", id: 7},
		{name: "missing user", id: 8, wantError: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.GetUser(ctx, tt.id)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created.Name, user.Name)
			assert.Equal(t, created.Email, user.Email)
			require.NotNil(t, user.Phone)
			assert.Equal(t, "555-0100", *user.Phone)
			assert.Nil(t, user.Website)
			assert.JSONEq(t, `{"city":"Gwenborough"}`, string(user.Address))
			assert.Nil(t, user.Company)
		})
	}
}
