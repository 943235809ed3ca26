package store

import (
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"

	"github.com/nibzard/kanban-go/internal/utils"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// ParseBackend normalises a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(utils.NormalizeName(s)); b {
	case BackendFile, BackendRedis, BackendMemory:
		return b, nil
	case "":
		return BackendFile, nil
	}
	return "", fmt.Errorf("unknown store backend %q (want file, redis or memory)", s)
}

// Options selects and configures a backend.
type Options struct {
	Backend       Backend
	Key           string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open constructs the backend named by opts.Backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.DataDir, opts.Key)
	case BackendRedis:
		return NewRedisStore(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		}, opts.Key)
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
}

// Close releases resources held by s, if any.
func Close(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
