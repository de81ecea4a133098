package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	"github.com/m04kA/SMC-UrbanServices/internal/infra/storage/local"
	sessionRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/session"
	"github.com/m04kA/SMC-UrbanServices/pkg/logger"
)

type loginCounter struct {
	ok, failed int
}

func (c *loginCounter) LoginAttempt(success bool) {
	if success {
		c.ok++
		return
	}
	c.failed++
}

func newHolder(store *local.MemoryStore) (*Holder, *loginCounter) {
	counter := &loginCounter{}
	return NewHolder(sessionRepo.NewRepository(store, ""), counter, logger.NewNop()), counter
}

func TestLoginSucceedsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := local.NewMemoryStore()
	h, counter := newHolder(store)

	ok, err := h.Login(ctx, "provider@demo.com", "demo123")
	require.NoError(t, err)
	assert.True(t, ok)

	identity, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "2", identity.ID)
	assert.Equal(t, domain.RoleProvider, identity.Role)
	assert.Equal(t, 1, counter.ok)

	// новый процесс восстанавливает сессию из хранилища
	restored, _ := newHolder(store)
	require.NoError(t, restored.Restore(ctx))
	identity, ok = restored.Current()
	require.True(t, ok)
	assert.Equal(t, "provider@demo.com", identity.Email)
}

func TestLoginFailureKeepsCurrentIdentity(t *testing.T) {
	ctx := context.Background()
	h, counter := newHolder(local.NewMemoryStore())

	ok, err := h.Login(ctx, "customer@demo.com", "demo123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Login(ctx, "nobody@demo.com", "demo123")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Login(ctx, "admin@demo.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	identity, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "1", identity.ID)
	assert.Equal(t, 2, counter.failed)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := local.NewMemoryStore()
	h, _ := newHolder(store)

	require.NoError(t, h.Logout(ctx))

	_, err := h.Login(ctx, "admin@demo.com", "demo123")
	require.NoError(t, err)

	require.NoError(t, h.Logout(ctx))
	require.NoError(t, h.Logout(ctx))

	_, ok := h.Current()
	assert.False(t, ok)

	_, err = store.GetItem(ctx, domain.SessionStorageKey)
	assert.ErrorIs(t, err, local.ErrItemNotFound)
}

func TestRestoreIgnoresCorruptSession(t *testing.T) {
	ctx := context.Background()
	store := local.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, domain.SessionStorageKey, []byte("{broken")))

	h, _ := newHolder(store)
	require.NoError(t, h.Restore(ctx))

	_, ok := h.Current()
	assert.False(t, ok)
}

func TestCurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	h, _ := newHolder(local.NewMemoryStore())
	_, err := h.Login(ctx, "customer@demo.com", "demo123")
	require.NoError(t, err)

	identity, _ := h.Current()
	identity.Name = "changed"

	again, _ := h.Current()
	assert.Equal(t, "Rajesh Kumar", again.Name)
}

type brokenRepo struct{}

func (brokenRepo) Load(context.Context) (*domain.Identity, error) {
	return nil, errors.New("redis: connection refused")
}
func (brokenRepo) Save(context.Context, *domain.Identity) error { return errors.New("redis: connection refused") }
func (brokenRepo) Clear(context.Context) error { return errors.New("redis: connection refused") }

func TestStorageFailures(t *testing.T) {
	ctx := context.Background()
	h := NewHolder(brokenRepo{}, &loginCounter{}, logger.NewNop())

	assert.ErrorIs(t, h.Restore(ctx), ErrInternal)

	ok, err := h.Login(ctx, "customer@demo.com", "demo123")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInternal)

	_, current := h.Current()
	assert.False(t, current)
}
