package get_customer_profile

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/service/dashboard/models"
)

type DashboardService interface {
	CustomerProfile(ctx context.Context, customerID string) (*models.CustomerProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
