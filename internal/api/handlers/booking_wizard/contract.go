package booking_wizard

import (
	"context"

	bookingWizard "github.com/m04kA/SMC-UrbanServices/internal/usecase/booking_wizard"
)

type WizardUseCase interface {
	Open(providerID string) (*bookingWizard.View, error)
	Get(id string) (*bookingWizard.View, error)
	SetService(id string, in *bookingWizard.ServiceInput) (*bookingWizard.View, error)
	SetDetails(id string, in *bookingWizard.DetailsInput) (*bookingWizard.View, error)
	SetPayment(id string, in *bookingWizard.PaymentInput) (*bookingWizard.View, error)
	Next(id string) (*bookingWizard.View, error)
	Back(id string) (*bookingWizard.View, error)
	Submit(ctx context.Context, id string) (*bookingWizard.Confirmation, error)
	Close(id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
