// Package cache provides the read-through cache for the posts list.
package cache

import (
	"context"
	"time"
)

// Cache хранит сериализованные ответы по ключу
type Cache interface {
	// Get returns the value and whether the key was found
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	DelPrefix(ctx context.Context, prefix string) error
	Close() error
}

// InvalidatePosts удаляет полный список и все страницы постов
func InvalidatePosts(ctx context.Context, c Cache) error {
	if err := c.Del(ctx, PostsListKey); err != nil {
		return err
	}
	return c.DelPrefix(ctx, postsPagePrefix)
}
