package registration

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

const minPasswordLength = 6

var (
	emailPattern   = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern   = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// Service проверка формы регистрации.
// Демо-приложение не создаёт учётных записей: вход возможен только для демо-пользователей.
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса регистрации
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Register проверяет форму и возвращает подтверждение
func (s *Service) Register(req *Request) (*Response, error) {
	if fields := Validate(req); len(fields) > 0 {
		s.logger.Warn("Register: %d invalid fields for email=%s", len(fields), req.Email)
		return nil, &ValidationError{Fields: fields}
	}

	s.logger.Info("Register: accepted registration form for email=%s type=%s (not persisted)", req.Email, req.UserType)
	return &Response{
		Message:  fmt.Sprintf("Welcome %s! Your account has been created.", req.FullName),
		FullName: req.FullName,
		Email:    req.Email,
		UserType: req.UserType,
	}, nil
}

// Validate возвращает ошибки по полям; пустая карта означает корректную форму
func Validate(req *Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}

	switch {
	case strings.TrimSpace(req.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(req.Email):
		errs["email"] = "Please enter a valid email"
	}

	switch {
	case strings.TrimSpace(req.Phone) == "":
		errs["phone"] = "Phone number is required"
	case !phonePattern.MatchString(req.Phone):
		errs["phone"] = "Please enter a valid phone number"
	}

	switch {
	case req.Password == "":
		errs["password"] = "Password is required"
	case len(req.Password) < minPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	}

	switch {
	case req.ConfirmPassword == "":
		errs["confirmPassword"] = "Please confirm your password"
	case req.Password != req.ConfirmPassword:
		errs["confirmPassword"] = "Passwords do not match"
	}

	if strings.TrimSpace(req.Address) == "" {
		errs["address"] = "Address is required"
	}

	switch {
	case strings.TrimSpace(req.Pincode) == "":
		errs["pincode"] = "Pincode is required"
	case !pincodePattern.MatchString(req.Pincode):
		errs["pincode"] = "Please enter a valid 6-digit pincode"
	}

	if strings.TrimSpace(req.City) == "" {
		errs["city"] = "City is required"
	}

	if strings.TrimSpace(req.State) == "" {
		errs["state"] = "State is required"
	}

	if role := domain.Role(req.UserType); role != domain.RoleCustomer && role != domain.RoleProvider {
		errs["userType"] = "Please select user type"
	}

	if !req.AgreeToTerms {
		errs["agreeToTerms"] = "You must agree to the terms and conditions"
	}

	return errs
}
