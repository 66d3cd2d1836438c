package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/postkeeper/internal/client/storage"
	"github.com/iudanet/postkeeper/internal/models"
)

const keyPostsSnapshot = "snapshot"

// SavePosts сохраняет последний подтвержденный сервером список постов
func (s *Storage) SavePosts(ctx context.Context, posts []*models.Post) error {
	if posts == nil {
		posts = []*models.Post{}
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to marshal posts: %w", err)
	}

	err = s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}
		return bucket.Put([]byte(keyPostsSnapshot), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save posts: %w", err)
	}

	return nil
}

// LoadPosts returns nil if nothing has been saved yet
func (s *Storage) LoadPosts(ctx context.Context) ([]*models.Post, error) {
	var data []byte

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPosts)
		if bucket == nil {
			return fmt.Errorf("posts bucket not found")
		}
		if raw := bucket.Get([]byte(keyPostsSnapshot)); raw != nil {
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	if data == nil {
		return nil, nil
	}

	var posts []*models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrCorruptSnapshot, err)
	}

	return posts, nil
}
