package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Load(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ByProvider(ctx context.Context, providerID string) ([]*domain.Booking, error)
	ByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	MostRecent(ctx context.Context, n int) ([]*domain.Booking, error)
}

// Catalog источник статических данных каталога
type Catalog interface {
	Services() []domain.Service
	Providers() []domain.Provider
	Reviews() []domain.Review
	ProviderByID(id string) (*domain.Provider, bool)
	ServiceByID(id string) (*domain.Service, bool)
	ServicesByProvider(providerID string) []domain.Service
	ReviewsByProvider(providerID string) []domain.Review
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
