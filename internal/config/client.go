package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Client contains CLI client settings.
type Client struct {
	ServerURL     string
	DBPath        string
	LogLevel      string
	Timeout       time.Duration
	ProbeInterval time.Duration
	Offline       bool
}

var clientBindings = []flagBinding{
	{key: "server", flag: "server"},
	{key: "db", flag: "db"},
	{key: "offline", flag: "offline"},
	{key: "timeout", flag: "timeout"},
	{key: "probe.interval", flag: "probe-interval"},
	{key: "log.level", flag: "log-level"},
}

// RegisterClientFlags добавляет глобальные флаги клиента
func RegisterClientFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to config file (yaml, json or toml)")
	fs.String("server", "http://localhost:8080", "Server URL")
	fs.String("db", "postkeeper-client.db", "Path to local database")
	fs.Bool("offline", false, "Work offline: queue changes instead of sending them")
	fs.Duration("timeout", 10*time.Second, "Timeout for a single server request")
	fs.Duration("probe-interval", 5*time.Second, "Connectivity probe interval for watch mode")
	fs.String("log-level", "warn", "Log level: debug, info, warn, error")
}

// LoadClient собирает конфигурацию клиента
func LoadClient(fs *pflag.FlagSet) (*Client, error) {
	v := newViper()

	v.SetDefault("server", "http://localhost:8080")
	v.SetDefault("db", "postkeeper-client.db")
	v.SetDefault("offline", false)
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("probe.interval", 5*time.Second)
	v.SetDefault("log.level", "warn")

	if err := bind(v, fs, clientBindings); err != nil {
		return nil, err
	}

	cfg := &Client{
		ServerURL:     v.GetString("server"),
		DBPath:        v.GetString("db"),
		Offline:       v.GetBool("offline"),
		Timeout:       v.GetDuration("timeout"),
		ProbeInterval: v.GetDuration("probe.interval"),
		LogLevel:      v.GetString("log.level"),
	}

	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server URL cannot be empty")
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.Timeout <= 0 || cfg.ProbeInterval <= 0 {
		return nil, fmt.Errorf("timeout and probe interval must be positive")
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}
