package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	"github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"
)

// Service сервис чтения каталога
type Service struct {
	catalog Catalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog Catalog, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Categories возвращает все категории
func (s *Service) Categories() []models.CategoryResponse {
	categories := s.catalog.Categories()
	result := make([]models.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, models.FromDomainCategory(c))
	}
	return result
}

// SearchProviders фильтрует исполнителей.
// Поиск по подстроке без учёта регистра в имени и направлениях,
// категория сравнивается с направлениями точно, локация - по подстроке.
// Все фильтры объединяются через AND.
func (s *Service) SearchProviders(req *models.SearchProvidersRequest) []models.ProviderCardResponse {
	query := strings.ToLower(strings.TrimSpace(req.Query))

	result := make([]models.ProviderCardResponse, 0)
	for _, p := range s.catalog.Providers() {
		if !matchesQuery(p, query) {
			continue
		}
		if !isAll(req.Category) && !p.OffersSpecialty(req.Category) {
			continue
		}
		if !isAll(req.Location) && !strings.Contains(p.Location, req.Location) {
			continue
		}
		result = append(result, models.FromDomainProviderCard(p))
	}

	s.logger.Info("SearchProviders: query=%q category=%q location=%q matched %d providers",
		req.Query, req.Category, req.Location, len(result))
	return result
}

// ListServices возвращает услуги каталога с фильтрами по исполнителю и категории
func (s *Service) ListServices(req *models.ListServicesRequest) []models.ServiceResponse {
	result := make([]models.ServiceResponse, 0)
	for _, svc := range s.catalog.Services() {
		if req.ProviderID != nil && svc.ProviderID != *req.ProviderID {
			continue
		}
		if req.Category != nil && !isAll(*req.Category) && svc.Category != *req.Category {
			continue
		}
		result = append(result, models.FromDomainService(svc))
	}
	return result
}

// SubmitServiceDraft проверяет форму услуги и возвращает подтверждение.
// Каталог статический, поэтому данные не сохраняются.
func (s *Service) SubmitServiceDraft(providerID string, req *models.ServiceDraftRequest) (*models.ServiceDraftResponse, error) {
	if _, ok := s.catalog.ProviderByID(providerID); !ok {
		s.logger.Warn("SubmitServiceDraft: provider id=%s not found", providerID)
		return nil, ErrProviderNotFound
	}

	if err := validateDraft(req); err != nil {
		s.logger.Warn("SubmitServiceDraft: provider=%s validation failed: %v", providerID, err)
		return nil, err
	}

	action := "added"
	if req.Mode == models.DraftModeEdit {
		action = "updated"
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	s.logger.Info("SubmitServiceDraft: provider=%s %s service %q (not persisted)", providerID, action, req.Name)

	return &models.ServiceDraftResponse{
		Action:  action,
		Message: fmt.Sprintf("%s has been %s successfully.", req.Name, action),
		Service: models.FromDomainService(domain.Service{
			ID:              req.ServiceID,
			Name:            req.Name,
			Category:        req.Category,
			Description:     req.Description,
			Price:           req.Price,
			DurationMinutes: req.DurationMinutes,
			ProviderID:      providerID,
			Available:       available,
		}),
	}, nil
}

func validateDraft(req *models.ServiceDraftRequest) error {
	if req.Mode != "" && req.Mode != models.DraftModeAdd && req.Mode != models.DraftModeEdit {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		req.Price <= 0 ||
		req.DurationMinutes <= 0 {
		return ErrMissingFields
	}

	return nil
}

func matchesQuery(p domain.Provider, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	for _, specialty := range p.Specialties {
		if strings.Contains(strings.ToLower(specialty), query) {
			return true
		}
	}
	return false
}

func isAll(value string) bool {
	return value == "" || value == models.FilterAll
}
