package login

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

type SessionHolder interface {
	Login(ctx context.Context, email, password string) (bool, error)
	Current() (*domain.Identity, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
