package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	"github.com/m04kA/SMC-UrbanServices/internal/infra/storage/local"
)

// Repository репозиторий бронирований.
// Весь список хранится одной записью и перезаписывается целиком при каждом изменении.
// Циклы чтение-изменение-запись сериализуются мьютексом внутри процесса;
// записи из других процессов не сливаются (побеждает последняя).
type Repository struct {
	mu    sync.Mutex
	store ItemStore
	key   string
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store ItemStore, key string) *Repository {
	if key == "" {
		key = domain.BookingsStorageKey
	}
	return &Repository{store: store, key: key}
}

// Load возвращает весь список бронирований; пустой список, если записи ещё нет
func (r *Repository) Load(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// List возвращает бронирования, подходящие под фильтр, в порядке хранения
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	bookings, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Matches(b) {
			result = append(result, b)
		}
	}

	return result, nil
}

// ByProvider возвращает бронирования исполнителя
func (r *Repository) ByProvider(ctx context.Context, providerID string) ([]*domain.Booking, error) {
	return r.List(ctx, domain.BookingsFilter{ProviderID: &providerID})
}

// ByCustomer возвращает бронирования клиента
func (r *Repository) ByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return r.List(ctx, domain.BookingsFilter{CustomerID: &customerID})
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return nil, fmt.Errorf("%w: GetByID - id %s", ErrBookingNotFound, id)
}

// Exists проверяет, занят ли ID
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrBookingNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MostRecent возвращает до n бронирований, сначала новые.
// Порядок определяется по createdAt, при его отсутствии - по дате бронирования.
// Сохранённый список не изменяется.
func (r *Repository) MostRecent(ctx context.Context, n int) ([]*domain.Booking, error) {
	if n <= 0 {
		return []*domain.Booking{}, nil
	}

	bookings, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	return SortRecent(bookings, n), nil
}

// SortRecent возвращает копию до n бронирований, отсортированную "сначала новые"
func SortRecent(bookings []*domain.Booking, n int) []*domain.Booking {
	if n <= 0 {
		return []*domain.Booking{}
	}

	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortTime().After(sorted[j].SortTime())
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Append добавляет бронирование в конец списка и сохраняет список целиком
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		if b.ID == booking.ID {
			return fmt.Errorf("%w: Append - id %s", ErrBookingExists, booking.ID)
		}
	}

	return r.save(ctx, append(bookings, booking))
}

// SetStatus перезаписывает статус бронирования.
// Если бронирование с таким ID не найдено, ничего не происходит.
func (r *Repository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: SetStatus - status %q", ErrInvalidStatus, status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for _, b := range bookings {
		if b.ID == id {
			b.Status = status
			found = true
		}
	}
	if !found {
		return nil
	}

	return r.save(ctx, bookings)
}

// Cancel отменяет бронирование; повторная отмена ничего не меняет
func (r *Repository) Cancel(ctx context.Context, id string) error {
	return r.SetStatus(ctx, id, domain.StatusCancelled)
}

// Clear удаляет сохранённый список бронирований
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.RemoveItem(ctx, r.key); err != nil {
		return fmt.Errorf("%w: Clear - remove %s: %v", ErrWriteStore, r.key, err)
	}
	return nil
}

// Seed сохраняет начальные бронирования, если список пуст.
// Возвращает true, если данные были записаны.
func (r *Repository) Seed(ctx context.Context, bookings []*domain.Booking) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 || len(bookings) == 0 {
		return false, nil
	}

	if err := r.save(ctx, bookings); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) load(ctx context.Context) ([]*domain.Booking, error) {
	data, err := r.store.GetItem(ctx, r.key)
	if errors.Is(err, local.ErrItemNotFound) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load - get %s: %v", ErrReadStore, r.key, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: load - unmarshal: %v", ErrDecode, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		b, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: load - %v", ErrDecode, err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *Repository) save(ctx context.Context, bookings []*domain.Booking) error {
	records := make([]record, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, toRecord(b))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: save - marshal: %v", ErrWriteStore, err)
	}

	if err := r.store.SetItem(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: save - set %s: %v", ErrWriteStore, r.key, err)
	}

	return nil
}
