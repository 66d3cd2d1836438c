package storage

import (
	"context"

	"github.com/iudanet/postkeeper/internal/models"
)

//go:generate moq -out posts_mock.go . PostsStorage

// PostsStorage keeps the last confirmed posts list for offline reads
type PostsStorage interface {
	SavePosts(ctx context.Context, posts []*models.Post) error

	// LoadPosts returns nil slice if no snapshot exists
	LoadPosts(ctx context.Context) ([]*models.Post, error)
}
