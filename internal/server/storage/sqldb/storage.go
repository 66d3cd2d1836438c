// Package sqldb implements server storage over database/sql.
// Supported drivers: modernc SQLite (default) and PostgreSQL through pgx.
package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/postkeeper/internal/config"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

// dialect описывает различия между поддерживаемыми базами
type dialect struct {
	driverName    string
	gooseDialect  string
	migrationsDir string
	placeholder   sq.PlaceholderFormat
}

var dialects = map[string]dialect{
	config.DriverSQLite: {
		driverName:    "sqlite",
		gooseDialect:  "sqlite3",
		migrationsDir: "migrations/sqlite",
		placeholder:   sq.Question,
	},
	config.DriverPostgres: {
		driverName:    "pgx",
		gooseDialect:  "postgres",
		migrationsDir: "migrations/postgres",
		placeholder:   sq.Dollar,
	},
}

// Storage represents SQL storage implementation
type Storage struct {
	db      *sql.DB
	sb      sq.StatementBuilderType
	dialect dialect
	driver  string
}

// New creates a new storage instance.
// driver is "sqlite" or "pgx"; for SQLite dsn is the database file path,
// use ":memory:" for in-memory database (useful for testing).
func New(ctx context.Context, driver, dsn string) (*Storage, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	// Открываем соединение с БД
	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Storage{
		db:      db,
		sb:      sq.StatementBuilder.PlaceholderFormat(d.placeholder),
		dialect: d,
		driver:  driver,
	}

	if driver == config.DriverSQLite {
		if err := s.configureSQLite(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	// Запускаем миграции
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// configureSQLite настраивает пул и pragma для SQLite
func (s *Storage) configureSQLite(ctx context.Context) error {
	// SQLite с WAL mode может поддерживать несколько читателей, но только одного писателя
	s.db.SetMaxOpenConns(1)
	s.db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping checks database connectivity
func (s *Storage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Driver returns the configured driver name
func (s *Storage) Driver() string {
	return s.driver
}

// runMigrations выполняет миграции из embedded FS
func (s *Storage) runMigrations() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(s.dialect.gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(s.db, s.dialect.migrationsDir); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// DB returns the underlying database connection for testing purposes
func (s *Storage) DB() *sql.DB {
	return s.db
}
