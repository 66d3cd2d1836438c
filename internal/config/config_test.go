package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterClientFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func serverFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterServerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient(clientFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "postkeeper-client.db", cfg.DBPath)
	assert.False(t, cfg.Offline)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.ProbeInterval)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadClient_Precedence(t *testing.T) {
	t.Setenv("POSTKEEPER_SERVER", "http://env:9000")
	t.Setenv("POSTKEEPER_DB", "env.db")
	t.Setenv("POSTKEEPER_PROBE_INTERVAL", "2s")

	cfg, err := LoadClient(clientFlags(t, "--db", "flag.db", "--offline"))
	require.NoError(t, err)

	// флаг важнее окружения, окружение важнее значения по умолчанию
	assert.Equal(t, "flag.db", cfg.DBPath)
	assert.Equal(t, "http://env:9000", cfg.ServerURL)
	assert.Equal(t, 2*time.Second, cfg.ProbeInterval)
	assert.True(t, cfg.Offline)
}

func TestLoadClient_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	content := "server: http://file:7000\ntimeout: 3s\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadClient(clientFlags(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "http://file:7000", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadClient_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "empty server", args: []string{"--server", ""}},
		{name: "empty db", args: []string{"--db", ""}},
		{name: "zero timeout", args: []string{"--timeout", "0s"}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
		{name: "missing config file", args: []string{"--config", "/nonexistent/client.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadClient(clientFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestLoadServer_Defaults(t *testing.T) {
	cfg, err := LoadServer(serverFlags(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "postkeeper.db", cfg.DBDSN)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.Seed)
}

func TestLoadServer_EnvAndFlags(t *testing.T) {
	t.Setenv("POSTKEEPER_DB_DRIVER", "pgx")
	t.Setenv("POSTKEEPER_DB_DSN", "postgres://localhost/posts")
	t.Setenv("POSTKEEPER_REDIS_ADDR", "localhost:6379")

	cfg, err := LoadServer(serverFlags(t, "--seed", "--rate-limit", "5"))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/posts", cfg.DBDSN)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.Seed)
	assert.Equal(t, 5, cfg.RateLimitRequests)
}

func TestLoadServer_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown driver", args: []string{"--db-driver", "mysql"}},
		{name: "empty dsn", args: []string{"--db-dsn", ""}},
		{name: "zero rate limit", args: []string{"--rate-limit", "0"}},
		{name: "bad log level", args: []string{"--log-level", "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadServer(serverFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" debug ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, "warn", true)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)

	buf.Reset()
	NewLogger(&buf, "nonsense", false).Info("fallback to info")
	assert.Contains(t, buf.String(), "msg=\"fallback to info\"")
}
