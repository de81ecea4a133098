package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	"github.com/m04kA/SMC-UrbanServices/internal/infra/storage/local"
)

func newBooking(id, providerID string, date time.Time, created *time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		ProviderID:    providerID,
		ProviderName:  "Priya Sharma",
		Service:       "Home Cleaning",
		CustomerID:    "1",
		CustomerName:  "Rajesh Kumar",
		Date:          date,
		Time:          "10:00",
		DurationHours: 2,
		Address:       "A-123 Green Park Extension",
		Phone:         "+91 98765 43210",
		PaymentMethod: domain.PaymentCashOnDelivery,
		TotalAmount:   400,
		Status:        domain.StatusPending,
		CreatedAt:     created,
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestRepositoryLoadEmpty(t *testing.T) {
	repo := NewRepository(local.NewMemoryStore(), "")

	bookings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestRepositoryAppendAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(local.NewMemoryStore(), domain.BookingsStorageKey)

	created := time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)
	b := newBooking("booking_1705746600000", "2", day(22), &created)
	require.NoError(t, repo.Append(ctx, b))

	bookings, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, b, bookings[0])

	err = repo.Append(ctx, b)
	assert.ErrorIs(t, err, ErrBookingExists)
}

func TestRepositoryWireFormat(t *testing.T) {
	ctx := context.Background()
	store := local.NewMemoryStore()
	repo := NewRepository(store, domain.BookingsStorageKey)

	require.NoError(t, repo.Append(ctx, newBooking("booking_1", "2", day(22), nil)))

	data, err := store.GetItem(ctx, domain.BookingsStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": "booking_1",
		"providerId": "2",
		"providerName": "Priya Sharma",
		"service": "Home Cleaning",
		"customerId": "1",
		"customerName": "Rajesh Kumar",
		"date": "2024-01-22",
		"time": "10:00",
		"duration": 2,
		"address": "A-123 Green Park Extension",
		"phone": "+91 98765 43210",
		"notes": "",
		"paymentMethod": "cod",
		"totalAmount": 400,
		"status": "pending"
	}]`, string(data))
}

func TestRepositoryLoadAcceptsTimestampDate(t *testing.T) {
	ctx := context.Background()
	store := local.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, domain.BookingsStorageKey,
		[]byte(`[{"id":"booking_9","providerId":"3","date":"2024-01-22T00:00:00.000Z","status":"confirmed"}]`)))

	repo := NewRepository(store, domain.BookingsStorageKey)
	b, err := repo.GetByID(ctx, "booking_9")
	require.NoError(t, err)
	assert.Equal(t, 22, b.Date.Day())
	assert.Equal(t, domain.StatusConfirmed, b.Status)
}

func TestRepositoryLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	store := local.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, domain.BookingsStorageKey, []byte(`{not json`)))

	_, err := NewRepository(store, "").Load(ctx)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRepositorySetStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(local.NewMemoryStore(), "")
	require.NoError(t, repo.Append(ctx, newBooking("booking_1", "2", day(22), nil)))
	require.NoError(t, repo.Append(ctx, newBooking("booking_2", "3", day(23), nil)))

	require.NoError(t, repo.SetStatus(ctx, "booking_2", domain.StatusCompleted))

	b, err := repo.GetByID(ctx, "booking_2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, b.Status)

	other, err := repo.GetByID(ctx, "booking_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, other.Status)

	err = repo.SetStatus(ctx, "booking_1", domain.BookingStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRepositorySetStatusUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(local.NewMemoryStore(), "")
	require.NoError(t, repo.Append(ctx, newBooking("booking_1", "2", day(22), nil)))

	before, err := repo.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.SetStatus(ctx, "booking_404", domain.StatusConfirmed))

	after, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRepositoryCancelIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(local.NewMemoryStore(), "")
	require.NoError(t, repo.Append(ctx, newBooking("booking_1", "2", day(22), nil)))

	require.NoError(t, repo.Cancel(ctx, "booking_1"))
	require.NoError(t, repo.Cancel(ctx, "booking_1"))

	b, err := repo.GetByID(ctx, "booking_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, b.Status)
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewRepository(local.NewMemoryStore(), "")

	_, err := repo.GetByID(context.Background(), "booking_1")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	exists, err := repo.Exists(context.Background(), "booking_1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepositoryByProviderAndCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(local.NewMemoryStore(), "")
	require.NoError(t, repo.Append(ctx, newBooking("booking_1", "2", day(22), nil)))
	require.NoError(t, repo.Append(ctx, newBooking("booking_2", "3", day(23), nil)))
	require.NoError(t, repo.Append(ctx, newBooking("booking_3", "2", day(24), nil)))

	byProvider, err := repo.ByProvider(ctx, "2")
	require.NoError(t, err)
	require.Len(t, byProvider, 2)
	assert.Equal(t, "booking_1", byProvider[0].ID)
	assert.Equal(t, "booking_3", byProvider[1].ID)

	byCustomer, err := repo.ByCustomer(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 3)

	none, err := repo.ByCustomer(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepositoryMostRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(local.NewMemoryStore(), "")

	created := time.Date(2024, 1, 25, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, newBooking("booking_1", "2", day(20), nil)))
	require.NoError(t, repo.Append(ctx, newBooking("booking_2", "2", day(22), nil)))
	require.NoError(t, repo.Append(ctx, newBooking("booking_3", "2", day(18), &created)))

	recent, err := repo.MostRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "booking_3", recent[0].ID)
	assert.Equal(t, "booking_2", recent[1].ID)

	all, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "booking_1", all[0].ID, "stored order must not change")

	empty, err := repo.MostRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	recent, err = repo.MostRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestRepositoryClearAndSeed(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(local.NewMemoryStore(), "")

	seeded, err := repo.Seed(ctx, []*domain.Booking{newBooking("booking_1", "2", day(22), nil)})
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = repo.Seed(ctx, []*domain.Booking{newBooking("booking_2", "2", day(22), nil)})
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, repo.Clear(ctx))

	bookings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

type failingStore struct{}

func (failingStore) GetItem(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) SetItem(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func (failingStore) RemoveItem(context.Context, string) error {
	return errors.New("connection refused")
}

func TestRepositoryStoreErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(failingStore{}, "")

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrReadStore)

	err = repo.Clear(ctx)
	assert.ErrorIs(t, err, ErrWriteStore)
}

func TestRepositoryOverRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewRepository(local.NewRedisStore(client, "urban:"), domain.BookingsStorageKey)

	created := time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)
	b := newBooking("booking_1705746600000", "2", day(22), &created)
	b.ServiceID = "1"
	b.Notes = "Please bring eco-friendly supplies"
	require.NoError(t, repo.Append(ctx, b))

	// новый экземпляр репозитория читает то же самое после "перезапуска"
	reloaded, err := NewRepository(local.NewRedisStore(client, "urban:"), domain.BookingsStorageKey).Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, b, reloaded[0])
}
