package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/server/storage"
)

var postColumns = []string{
	"p.id", "p.title", "p.body", "p.user_id", "p.created_at", "p.updated_at",
}

// selectPosts возвращает запрос постов вместе с автором
func (s *Storage) selectPosts() sq.SelectBuilder {
	columns := append(append([]string{}, postColumns...), userColumns...)
	return s.sb.
		Select(columns...).
		From("posts p").
		Join("users u ON u.id = p.user_id")
}

func scanPost(row rowScanner) (*models.Post, error) {
	var (
		post models.Post
		f    userFields
	)

	dest := append([]any{
		&post.ID,
		&post.Title,
		&post.Body,
		&post.UserID,
		&post.CreatedAt,
		&post.UpdatedAt,
	}, f.dest()...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	post.User = f.result()
	return &post, nil
}

func (s *Storage) queryPosts(ctx context.Context, q sq.SelectBuilder) ([]*models.Post, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// ListPosts returns all posts, newest first
func (s *Storage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.queryPosts(ctx, s.selectPosts().OrderBy("p.created_at DESC", "p.id DESC"))
}

// ListPostsPage returns one page of posts, newest first
func (s *Storage) ListPostsPage(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("invalid page: limit=%d offset=%d", limit, offset)
	}

	q := s.selectPosts().
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return s.queryPosts(ctx, q)
}

// CountPosts returns total number of posts
func (s *Storage) CountPosts(ctx context.Context) (int, error) {
	query, args, err := s.sb.Select("COUNT(*)").From("posts").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// GetPost retrieves post by ID
func (s *Storage) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	query, args, err := s.selectPosts().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	post, err := scanPost(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// CreatePost inserts a new post after checking that the author exists
func (s *Storage) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	if _, err := s.GetUser(ctx, draft.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query, args, err := s.sb.
		Insert("posts").
		Columns("title", "body", "user_id", "created_at", "updated_at").
		Values(draft.Title, draft.Body, draft.UserID, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert post query: %w", err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return s.GetPost(ctx, id)
}

// UpdatePost changes only the fields supplied in patch
func (s *Storage) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (*models.Post, error) {
	q := s.sb.
		Update("posts").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if patch.Title != nil {
		q = q.Set("title", *patch.Title)
	}
	if patch.Body != nil {
		q = q.Set("body", *patch.Body)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update post query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if err := checkAffected(result, storage.ErrPostNotFound); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, id)
}

// DeletePost removes post by ID
func (s *Storage) DeletePost(ctx context.Context, id int64) error {
	query, args, err := s.sb.Delete("posts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete post query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return checkAffected(result, storage.ErrPostNotFound)
}

// checkAffected возвращает notFound, если запрос не затронул ни одной строки
func checkAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
