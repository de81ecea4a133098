package session

import (
	"context"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// SessionRepository хранилище идентичности текущего пользователя
type SessionRepository interface {
	Load(ctx context.Context) (*domain.Identity, error)
	Save(ctx context.Context, identity *domain.Identity) error
	Clear(ctx context.Context) error
}

// Metrics счётчики попыток входа
type Metrics interface {
	LoginAttempt(success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
