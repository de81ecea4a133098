package local

import (
	"context"
	"sync"
)

// MemoryStore хранилище записей в памяти процесса.
// Данные не переживают перезапуск; используется для демо-режима и тестов.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// GetItem возвращает значение записи
func (s *MemoryStore) GetItem(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return nil, ErrItemNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// SetItem перезаписывает значение записи целиком
func (s *MemoryStore) SetItem(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.items[key] = stored
	return nil
}

// RemoveItem удаляет запись; отсутствие записи не является ошибкой
func (s *MemoryStore) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
