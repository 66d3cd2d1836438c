package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Поддерживаемые драйверы базы данных
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Server contains server settings.
type Server struct {
	Addr              string
	DBDriver          string
	DBDSN             string
	RedisAddr         string
	RedisPassword     string
	LogLevel          string
	RedisDB           int
	RateLimitRequests int
	CacheTTL          time.Duration
	RateLimitWindow   time.Duration
	Seed              bool
}

var serverBindings = []flagBinding{
	{key: "addr", flag: "addr"},
	{key: "db.driver", flag: "db-driver"},
	{key: "db.dsn", flag: "db-dsn"},
	{key: "db.seed", flag: "seed"},
	{key: "redis.addr", flag: "redis-addr"},
	{key: "redis.password", flag: "redis-password"},
	{key: "redis.db", flag: "redis-db"},
	{key: "cache.ttl", flag: "cache-ttl"},
	{key: "ratelimit.requests", flag: "rate-limit"},
	{key: "ratelimit.window", flag: "rate-window"},
	{key: "log.level", flag: "log-level"},
}

// RegisterServerFlags добавляет флаги сервера в набор
func RegisterServerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to config file (yaml, json or toml)")
	fs.String("addr", ":8080", "HTTP listen address")
	fs.String("db-driver", DriverSQLite, "Database driver: sqlite or pgx")
	fs.String("db-dsn", "postkeeper.db", "Database DSN or SQLite file path")
	fs.Bool("seed", false, "Seed demo users and posts into an empty database")
	fs.String("redis-addr", "", "Redis address for the posts cache (in-memory cache when empty)")
	fs.String("redis-password", "", "Redis password")
	fs.Int("redis-db", 0, "Redis database number")
	fs.Duration("cache-ttl", 30*time.Second, "Posts list cache TTL")
	fs.Int("rate-limit", 100, "Requests allowed per client per window")
	fs.Duration("rate-window", time.Minute, "Rate limit window")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
}

// LoadServer собирает конфигурацию сервера: флаги > env > файл > значения по умолчанию
func LoadServer(fs *pflag.FlagSet) (*Server, error) {
	v := newViper()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.dsn", "postkeeper.db")
	v.SetDefault("db.seed", false)
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("ratelimit.requests", 100)
	v.SetDefault("ratelimit.window", time.Minute)
	v.SetDefault("log.level", "info")

	if err := bind(v, fs, serverBindings); err != nil {
		return nil, err
	}

	cfg := &Server{
		Addr:              v.GetString("addr"),
		DBDriver:          v.GetString("db.driver"),
		DBDSN:             v.GetString("db.dsn"),
		Seed:              v.GetBool("db.seed"),
		RedisAddr:         v.GetString("redis.addr"),
		RedisPassword:     v.GetString("redis.password"),
		RedisDB:           v.GetInt("redis.db"),
		CacheTTL:          v.GetDuration("cache.ttl"),
		RateLimitRequests: v.GetInt("ratelimit.requests"),
		RateLimitWindow:   v.GetDuration("ratelimit.window"),
		LogLevel:          v.GetString("log.level"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Server) validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q (want %s or %s)", c.DBDriver, DriverSQLite, DriverPostgres)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("db dsn cannot be empty")
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
