package search_providers

import (
	"net/url"

	"github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"
)

// SearchProvidersResponse HTTP response model
type SearchProvidersResponse struct {
	Providers []models.ProviderCardResponse `json:"providers"`
	Total     int                           `json:"total"`
}

// ToServiceRequest собирает фильтры из query параметров; отсутствующий фильтр означает "all"
func ToServiceRequest(query url.Values) *models.SearchProvidersRequest {
	return &models.SearchProvidersRequest{
		Query:    query.Get("q"),
		Category: valueOrAll(query.Get("category")),
		Location: valueOrAll(query.Get("location")),
	}
}

func valueOrAll(v string) string {
	if v == "" {
		return models.FilterAll
	}
	return v
}
