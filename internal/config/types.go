package config

import (
	"github.com/nibzard/kanban-go/internal/store"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
	// Warnings holds non-fatal problems, such as unknown keys in a file.
	Warnings []string
}

// Default values.
const (
	DefaultStore           = "file"
	DefaultStoreKey        = store.DefaultKey
	DefaultDataDir         = ".kanban"
	DefaultRedisAddr       = "localhost:6379"
	DefaultAllowEmptyCards = true
	DefaultLogDir          = "~/.kanban/logs"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// Config holds the full configuration for kanban.
type Config struct {
	// Storage
	Store    string      `toml:"store"`
	StoreKey string      `toml:"store_key"`
	DataDir  string      `toml:"data_dir"`
	Redis    RedisConfig `toml:"redis"`

	// Board policy
	AllowEmptyCards bool `toml:"allow_empty_cards"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// RedisConfig holds connection settings for the redis store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreOptions converts the storage settings for store.Open.
func (c *Config) StoreOptions() (store.Options, error) {
	backend, err := store.ParseBackend(c.Store)
	if err != nil {
		return store.Options{}, err
	}
	return store.Options{
		Backend:       backend,
		Key:           c.StoreKey,
		DataDir:       c.DataDir,
		RedisAddr:     c.Redis.Addr,
		RedisPassword: c.Redis.Password,
		RedisDB:       c.Redis.DB,
	}, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Store = DefaultStore
	cfg.StoreKey = DefaultStoreKey
	cfg.DataDir = DefaultDataDir
	cfg.Redis = RedisConfig{Addr: DefaultRedisAddr}
	cfg.AllowEmptyCards = DefaultAllowEmptyCards
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
