package booking

import "context"

// ItemStore хранилище именованных записей (memory, Redis или PostgreSQL)
type ItemStore interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}
