package models

import (
	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// FilterAll значение фильтра "без ограничений"
const FilterAll = "all"

// Draft modes
const (
	DraftModeAdd  = "add"
	DraftModeEdit = "edit"
)

// Request модели

// SearchProvidersRequest фильтры каталога исполнителей
type SearchProvidersRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"` // название направления или "all"
	Location string `json:"location"` // подстрока локации или "all"
}

// ListServicesRequest фильтры списка услуг
type ListServicesRequest struct {
	ProviderID *string `json:"providerId,omitempty"`
	Category   *string `json:"category,omitempty"`
}

// ServiceDraftRequest форма добавления или редактирования услуги
type ServiceDraftRequest struct {
	Mode            string  `json:"mode"` // "add" или "edit"
	ServiceID       string  `json:"serviceId,omitempty"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Available       *bool   `json:"available,omitempty"`
}

// Response модели

// CategoryResponse категория каталога
type CategoryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	ProviderCount int    `json:"providers"`
}

// ProviderCardResponse карточка исполнителя в результатах поиска
type ProviderCardResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Services     []string `json:"services"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	HourlyRate   float64  `json:"hourlyRate"`
	ResponseTime string   `json:"responseTime"`
	IsAvailable  bool     `json:"isAvailable"`
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	ProviderID      string  `json:"providerId"`
	Available       bool    `json:"available"`
}

// ServiceDraftResponse подтверждение формы услуги (ничего не сохраняется)
type ServiceDraftResponse struct {
	Action  string          `json:"action"` // "added" или "updated"
	Message string          `json:"message"`
	Service ServiceResponse `json:"service"`
}

// Конвертеры

// FromDomainCategory конвертирует domain.Category в CategoryResponse
func FromDomainCategory(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Icon:          c.Icon,
		ProviderCount: c.ProviderCount,
	}
}

// FromDomainProviderCard конвертирует domain.Provider в карточку поиска
func FromDomainProviderCard(p domain.Provider) ProviderCardResponse {
	return ProviderCardResponse{
		ID:           p.ID,
		Name:         p.Name,
		Location:     p.Location,
		Services:     append([]string{}, p.Specialties...),
		Rating:       p.Rating,
		TotalReviews: p.ReviewCount,
		HourlyRate:   p.HourlyRate,
		ResponseTime: p.ResponseTime,
		IsAvailable:  p.Available,
	}
}

// FromDomainService конвертирует domain.Service в ServiceResponse
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Rating:          s.Rating,
		Reviews:         s.ReviewCount,
		ProviderID:      s.ProviderID,
		Available:       s.Available,
	}
}
