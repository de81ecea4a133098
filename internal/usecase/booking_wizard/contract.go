package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) error
	Exists(ctx context.Context, id string) (bool, error)
}

// Catalog источник исполнителей
type Catalog interface {
	ProviderByID(id string) (*domain.Provider, bool)
}

// SessionHolder текущий пользователь (может отсутствовать)
type SessionHolder interface {
	Current() (*domain.Identity, bool)
}

// Metrics счётчики мастера бронирования
type Metrics interface {
	BookingCreated(paymentMethod string)
	SetWizardsOpen(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
