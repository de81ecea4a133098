package session

import "github.com/m04kA/SMC-UrbanServices/internal/domain"

// LoginRequest учётные данные демо-входа
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityResponse текущий пользователь
type IdentityResponse struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
}

// FromDomainIdentity конвертирует domain.Identity в IdentityResponse
func FromDomainIdentity(i *domain.Identity) *IdentityResponse {
	return &IdentityResponse{
		ID:      i.ID,
		Email:   i.Email,
		Name:    i.Name,
		Role:    string(i.Role),
		Phone:   i.Phone,
		Address: i.Address,
		Pincode: i.Pincode,
	}
}
