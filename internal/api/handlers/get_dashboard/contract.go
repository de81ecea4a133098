package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

type DashboardService interface {
	ForIdentity(ctx context.Context, identity *domain.Identity) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
