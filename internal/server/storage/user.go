package storage

import (
	"context"

	"github.com/iudanet/postkeeper/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// ListUsers returns all users ordered by name
	// Returns empty slice if no users found
	ListUsers(ctx context.Context) ([]*models.User, error)

	// GetUser retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUser(ctx context.Context, id int64) (*models.User, error)
}
