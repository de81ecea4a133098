package registration

// Request форма регистрации
type Request struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Address         string `json:"address"`
	Pincode         string `json:"pincode"`
	City            string `json:"city"`
	State           string `json:"state"`
	UserType        string `json:"userType"` // "customer" или "provider"
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

// Response подтверждение регистрации (учётная запись не создаётся)
type Response struct {
	Message  string `json:"message"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}
