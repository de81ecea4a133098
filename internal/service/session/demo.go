package session

import "github.com/m04kA/SMC-UrbanServices/internal/domain"

// DemoPassword единый пароль всех демо-пользователей
const DemoPassword = "demo123"

func strPtr(s string) *string {
	return &s
}

// demoUsers таблица демо-пользователей по email
var demoUsers = map[string]domain.Identity{
	"customer@demo.com": {
		ID:      "1",
		Email:   "customer@demo.com",
		Name:    "Rajesh Kumar",
		Role:    domain.RoleCustomer,
		Phone:   strPtr("+91 98765 43210"),
		Address: strPtr("A-123, Green Park Extension"),
		Pincode: strPtr("110016"),
	},
	"provider@demo.com": {
		ID:      "2",
		Email:   "provider@demo.com",
		Name:    "Priya Sharma",
		Role:    domain.RoleProvider,
		Phone:   strPtr("+91 87654 32109"),
		Address: strPtr("B-456, Lajpat Nagar"),
		Pincode: strPtr("110024"),
	},
	"admin@demo.com": {
		ID:    "3",
		Email: "admin@demo.com",
		Name:  "Admin User",
		Role:  domain.RoleAdmin,
		Phone: strPtr("+91 76543 21098"),
	},
}
