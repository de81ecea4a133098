package list_categories

import "github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"

type CatalogService interface {
	Categories() []models.CategoryResponse
}
