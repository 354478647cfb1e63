package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Badsnus/coolqr/internal/domain/common/errorz"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "coolqr:render:"

type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Storage keeps rendered images keyed by a hash of their options
type Storage struct {
	redis *redis.Client
}

func New(ctx context.Context, opts Options) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping render storage: %w", err)
	}
	return NewStorage(client), nil
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

// Get returns errorz.ErrCacheMiss when nothing is stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.redis.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorz.ErrCacheMiss
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) Set(ctx context.Context, key string, data []byte, expiration time.Duration) error {
	return s.redis.Set(ctx, keyPrefix+key, data, expiration).Err()
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.redis.Del(ctx, keyPrefix+key).Err()
}

func (s *Storage) Close() error {
	return s.redis.Close()
}
