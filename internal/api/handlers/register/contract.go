package register

import "github.com/m04kA/SMC-UrbanServices/internal/service/registration"

type RegistrationService interface {
	Register(req *registration.Request) (*registration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
