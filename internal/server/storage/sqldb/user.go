package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/internal/server/storage"
)

var userColumns = []string{
	"u.id", "u.name", "u.username", "u.email", "u.address",
	"u.phone", "u.website", "u.company", "u.created_at", "u.updated_at",
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// userFields собирает указатели для сканирования пользователя
type userFields struct {
	user    models.User
	phone   sql.NullString
	website sql.NullString
	address []byte
	company []byte
}

func (f *userFields) dest() []any {
	return []any{
		&f.user.ID,
		&f.user.Name,
		&f.user.Username,
		&f.user.Email,
		&f.address,
		&f.phone,
		&f.website,
		&f.company,
		&f.user.CreatedAt,
		&f.user.UpdatedAt,
	}
}

func (f *userFields) result() *models.User {
	u := f.user
	if f.phone.Valid {
		u.Phone = &f.phone.String
	}
	if f.website.Valid {
		u.Website = &f.website.String
	}
	if f.address != nil {
		u.Address = json.RawMessage(append([]byte(nil), f.address...))
	}
	if f.company != nil {
		u.Company = json.RawMessage(append([]byte(nil), f.company...))
	}
	return &u
}

func scanUser(row rowScanner) (*models.User, error) {
	var f userFields
	if err := row.Scan(f.dest()...); err != nil {
		return nil, err
	}
	return f.result(), nil
}

// ListUsers returns all users ordered by name
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	query, args, err := s.sb.
		Select(userColumns...).
		From("users u").
		OrderBy("u.name ASC", "u.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// GetUser retrieves user by ID
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query, args, err := s.sb.
		Select(userColumns...).
		From("users u").
		Where(sq.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// createUser вставляет пользователя с заданным id (используется при заполнении БД)
func (s *Storage) createUser(ctx context.Context, exec sq.ExecerContext, user *models.User) error {
	query, args, err := s.sb.
		Insert("users").
		Columns("id", "name", "username", "email", "address", "phone", "website", "company", "created_at", "updated_at").
		Values(
			user.ID,
			user.Name,
			user.Username,
			user.Email,
			jsonArg(user.Address),
			user.Phone,
			user.Website,
			jsonArg(user.Company),
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert user query: %w", err)
	}

	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert user %s: %w", user.Username, err)
	}

	return nil
}

// jsonArg передает JSON как строку, пустое значение как NULL
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
