package sqldb

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/postkeeper/internal/config"
	"github.com/iudanet/postkeeper/internal/models"
)

//go:embed seed/data.json
var seedData []byte

// seedSet описывает встроенный набор демонстрационных данных
type seedSet struct {
	Users []models.User `json:"users"`
	Posts []struct {
		Title  string `json:"title"`
		Body   string `json:"body"`
		UserID int64  `json:"userId"`
	} `json:"posts"`
}

// Seed fills an empty database with the embedded users and posts.
// Returns false when users already exist and nothing was inserted.
func (s *Storage) Seed(ctx context.Context) (bool, error) {
	var users int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if users > 0 {
		return false, nil
	}

	var set seedSet
	if err := json.Unmarshal(seedData, &set); err != nil {
		return false, fmt.Errorf("failed to parse seed data: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	for i := range set.Users {
		u := &set.Users[i]
		u.CreatedAt, u.UpdatedAt = now, now
		if err := s.createUser(ctx, tx, u); err != nil {
			return false, err
		}
	}

	// Пользователи вставлены с явными id, сдвигаем identity последовательность
	if s.driver == config.DriverPostgres {
		if _, err := tx.ExecContext(ctx,
			"SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))"); err != nil {
			return false, fmt.Errorf("failed to reset users sequence: %w", err)
		}
	}

	for i, p := range set.Posts {
		// Разносим время создания, чтобы сохранить порядок набора
		created := now.Add(-time.Duration(len(set.Posts)-i) * time.Second)
		query, args, err := s.sb.
			Insert("posts").
			Columns("title", "body", "user_id", "created_at", "updated_at").
			Values(p.Title, p.Body, p.UserID, created, created).
			ToSql()
		if err != nil {
			return false, fmt.Errorf("failed to build insert post query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("failed to insert seed post: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	return true, nil
}
