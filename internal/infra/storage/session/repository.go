package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	"github.com/m04kA/SMC-UrbanServices/internal/infra/storage/local"
)

type record struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
}

// Repository хранит идентичность текущего пользователя между перезапусками
type Repository struct {
	store ItemStore
	key   string
}

// NewRepository создает новый экземпляр репозитория сессии
func NewRepository(store ItemStore, key string) *Repository {
	if key == "" {
		key = domain.SessionStorageKey
	}
	return &Repository{store: store, key: key}
}

// Load возвращает сохранённую идентичность или nil, если сессии нет
func (r *Repository) Load(ctx context.Context) (*domain.Identity, error) {
	data, err := r.store.GetItem(ctx, r.key)
	if errors.Is(err, local.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get %s: %v", ErrReadStore, r.key, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal: %v", ErrDecode, err)
	}

	role := domain.Role(rec.Role)
	if rec.ID == "" || (role != domain.RoleCustomer && role != domain.RoleProvider && role != domain.RoleAdmin) {
		return nil, fmt.Errorf("%w: Load - incomplete identity", ErrDecode)
	}

	return &domain.Identity{
		ID:      rec.ID,
		Email:   rec.Email,
		Name:    rec.Name,
		Role:    role,
		Phone:   rec.Phone,
		Address: rec.Address,
		Pincode: rec.Pincode,
	}, nil
}

// Save сохраняет идентичность
func (r *Repository) Save(ctx context.Context, identity *domain.Identity) error {
	data, err := json.Marshal(record{
		ID:      identity.ID,
		Email:   identity.Email,
		Name:    identity.Name,
		Role:    string(identity.Role),
		Phone:   identity.Phone,
		Address: identity.Address,
		Pincode: identity.Pincode,
	})
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrWriteStore, err)
	}

	if err := r.store.SetItem(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrWriteStore, r.key, err)
	}
	return nil
}

// Clear удаляет сохранённую сессию
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.store.RemoveItem(ctx, r.key); err != nil {
		return fmt.Errorf("%w: Clear - remove %s: %v", ErrWriteStore, r.key, err)
	}
	return nil
}
