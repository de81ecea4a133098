package list_services

import "github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"

type CatalogService interface {
	ListServices(req *models.ListServicesRequest) []models.ServiceResponse
}
