package get_provider_profile

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/service/dashboard/models"
)

type DashboardService interface {
	ProviderProfile(ctx context.Context, providerID string) (*models.ProviderProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
