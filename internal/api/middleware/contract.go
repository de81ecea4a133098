package middleware

import "github.com/m04kA/SMC-UrbanServices/internal/domain"

// SessionHolder источник текущего пользователя
type SessionHolder interface {
	Current() (*domain.Identity, bool)
}

// Metrics метрики HTTP запросов
type Metrics interface {
	ObserveHTTPRequest(method, route string, status int, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
