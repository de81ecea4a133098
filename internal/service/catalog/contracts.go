package catalog

import "github.com/m04kA/SMC-UrbanServices/internal/domain"

// Catalog источник статических данных каталога
type Catalog interface {
	Categories() []domain.Category
	Services() []domain.Service
	Providers() []domain.Provider
	ProviderByID(id string) (*domain.Provider, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
