package submit_service

import "github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"

type CatalogService interface {
	SubmitServiceDraft(providerID string, req *models.ServiceDraftRequest) (*models.ServiceDraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
