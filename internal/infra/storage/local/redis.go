package local

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище записей в Redis, по одному ключу на запись
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisClient создает клиент Redis
func NewRedisClient(addr, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

// Ping проверяет соединение с Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

// GetItem возвращает значение записи
func (s *RedisStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetItem - redis get %s: %v", ErrExecQuery, key, err)
	}
	return data, nil
}

// SetItem перезаписывает значение записи целиком, без срока жизни
func (s *RedisStore) SetItem(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: SetItem - redis set %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

// RemoveItem удаляет запись; отсутствие записи не является ошибкой
func (s *RedisStore) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: RemoveItem - redis del %s: %v", ErrExecQuery, key, err)
	}
	return nil
}
