package storage

import (
	"context"

	"github.com/iudanet/postkeeper/internal/models"
)

// PostStorage defines interface for posts persistence.
// All returned posts carry the embedded author.
type PostStorage interface {
	// ListPosts returns all posts, newest first
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// ListPostsPage returns one page of posts, newest first
	ListPostsPage(ctx context.Context, limit, offset int) ([]*models.Post, error)

	// CountPosts returns total number of posts
	CountPosts(ctx context.Context) (int, error)

	// GetPost retrieves post by ID
	// Returns ErrPostNotFound if post doesn't exist
	GetPost(ctx context.Context, id int64) (*models.Post, error)

	// CreatePost inserts a new post
	// Returns ErrUserNotFound if the author doesn't exist
	CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error)

	// UpdatePost changes only the fields supplied in patch
	// Returns ErrPostNotFound if post doesn't exist
	UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (*models.Post, error)

	// DeletePost removes post by ID
	// Returns ErrPostNotFound if post doesn't exist
	DeletePost(ctx context.Context, id int64) error
}

// Storage объединяет все хранилища сервера
type Storage interface {
	PostStorage
	UserStorage

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}
