package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтры из query параметров
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}
	if v := query.Get("providerId"); v != "" {
		req.ProviderID = &v
	}
	if v := query.Get("customerId"); v != "" {
		req.CustomerID = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	return req
}
