package config

import (
	"fmt"
	"strconv"
	"strings"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindBool
)

// field describes one configurable value and how each source spells it.
type field struct {
	name  string // TOML key, dotted for tables
	env   string
	flag  string
	usage string
	kind  fieldKind
	get   func(*Config) string
	set   func(*Config, string) error
}

func stringField(name, env, flag, usage string, ptr func(*Config) *string) field {
	return field{
		name: name, env: env, flag: flag, usage: usage, kind: kindString,
		get: func(c *Config) string { return *ptr(c) },
		set: func(c *Config, v string) error {
			*ptr(c) = v
			return nil
		},
	}
}

func intField(name, env, flag, usage string, ptr func(*Config) *int) field {
	return field{
		name: name, env: env, flag: flag, usage: usage, kind: kindInt,
		get: func(c *Config) string { return strconv.Itoa(*ptr(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			*ptr(c) = n
			return nil
		},
	}
}

func boolField(name, env, flag, usage string, ptr func(*Config) *bool) field {
	return field{
		name: name, env: env, flag: flag, usage: usage, kind: kindBool,
		get: func(c *Config) string { return strconv.FormatBool(*ptr(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid boolean %q", v)
			}
			*ptr(c) = b
			return nil
		},
	}
}

var fields = []field{
	stringField("store", "KANBAN_STORE", "store", "Storage backend: file, redis or memory",
		func(c *Config) *string { return &c.Store }),
	stringField("store_key", "KANBAN_STORE_KEY", "store-key", "Storage key for the board",
		func(c *Config) *string { return &c.StoreKey }),
	stringField("data_dir", "KANBAN_DATA_DIR", "data-dir", "Directory for the file store",
		func(c *Config) *string { return &c.DataDir }),
	stringField("redis.addr", "KANBAN_REDIS_ADDR", "redis-addr", "Redis address (host:port)",
		func(c *Config) *string { return &c.Redis.Addr }),
	stringField("redis.password", "KANBAN_REDIS_PASSWORD", "", "",
		func(c *Config) *string { return &c.Redis.Password }),
	intField("redis.db", "KANBAN_REDIS_DB", "redis-db", "Redis database number",
		func(c *Config) *int { return &c.Redis.DB }),
	boolField("allow_empty_cards", "KANBAN_ALLOW_EMPTY_CARDS", "allow-empty-cards", "Allow cards with empty text",
		func(c *Config) *bool { return &c.AllowEmptyCards }),
	stringField("log_dir", "KANBAN_LOG_DIR", "log-dir", "Log directory",
		func(c *Config) *string { return &c.LogDir }),
	stringField("log_level", "KANBAN_LOG_LEVEL", "log-level", "Log level: debug, info, warn or error",
		func(c *Config) *string { return &c.LogLevel }),
	stringField("log_format", "KANBAN_LOG_FORMAT", "log-format", "Log format: text, json or logfmt",
		func(c *Config) *string { return &c.LogFormat }),
	boolField("log_timestamps", "KANBAN_LOG_TIMESTAMPS", "log-timestamps", "Include timestamps in log lines",
		func(c *Config) *bool { return &c.LogTimestamps }),
	boolField("log_caller", "KANBAN_LOG_CALLER", "log-caller", "Include caller location in log lines",
		func(c *Config) *bool { return &c.LogCaller }),
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.name)
	}
	return names
}

// Value returns the current value of a field by its TOML name.
// Secrets are masked.
func (c *Config) Value(name string) (string, bool) {
	for _, f := range fields {
		if f.name != name {
			continue
		}
		v := f.get(c)
		if name == "redis.password" && v != "" {
			v = "********"
		}
		return v, true
	}
	return "", false
}

// Fields returns every field name in display order.
func Fields() []string {
	return configFields()
}
