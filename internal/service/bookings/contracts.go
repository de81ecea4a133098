package bookings

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ByProvider(ctx context.Context, providerID string) ([]*domain.Booking, error)
	MostRecent(ctx context.Context, n int) ([]*domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id string) error
}

// Metrics счётчики бизнес-событий
type Metrics interface {
	BookingStatusChanged(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
