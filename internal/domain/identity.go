package domain

// Role роль пользователя в маркетплейсе
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Identity represents the currently acting user
type Identity struct {
	ID      string
	Email   string
	Name    string
	Role    Role
	Phone   *string
	Address *string
	Pincode *string
}

// IsCustomer returns true if the identity acts as a customer
func (i *Identity) IsCustomer() bool {
	return i.Role == RoleCustomer
}

// IsProvider returns true if the identity acts as a service provider
func (i *Identity) IsProvider() bool {
	return i.Role == RoleProvider
}

// IsAdmin returns true if the identity acts as an administrator
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
