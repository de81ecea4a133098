package get_booking

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/service/dashboard/models"
)

type DashboardService interface {
	BookingDetails(ctx context.Context, id string) (*models.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
