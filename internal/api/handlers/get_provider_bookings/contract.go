package get_provider_bookings

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
)

type BookingService interface {
	ProviderBookings(ctx context.Context, providerID string, page int) (*models.BookingPageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
