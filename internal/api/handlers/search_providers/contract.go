package search_providers

import "github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"

type CatalogService interface {
	SearchProviders(req *models.SearchProvidersRequest) []models.ProviderCardResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
