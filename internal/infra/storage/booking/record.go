package booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// record формат хранения бронирования (JSON массив в записи userBookings)
type record struct {
	ID            string     `json:"id"`
	ProviderID    string     `json:"providerId"`
	ProviderName  string     `json:"providerName"`
	Service       string     `json:"service"`
	ServiceID     string     `json:"serviceId,omitempty"`
	CustomerID    string     `json:"customerId,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Duration      int        `json:"duration"`
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	Notes         string     `json:"notes"`
	PaymentMethod string     `json:"paymentMethod"`
	TotalAmount   float64    `json:"totalAmount"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

func toRecord(b *domain.Booking) record {
	return record{
		ID:            b.ID,
		ProviderID:    b.ProviderID,
		ProviderName:  b.ProviderName,
		Service:       b.Service,
		ServiceID:     b.ServiceID,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		Date:          b.Date.Format(domain.DateFormat),
		Time:          b.Time,
		Duration:      b.DurationHours,
		Address:       b.Address,
		Phone:         b.Phone,
		Notes:         b.Notes,
		PaymentMethod: string(b.PaymentMethod),
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

func (r record) toDomain() (*domain.Booking, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", r.ID, err)
	}

	return &domain.Booking{
		ID:            r.ID,
		ProviderID:    r.ProviderID,
		ProviderName:  r.ProviderName,
		Service:       r.Service,
		ServiceID:     r.ServiceID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		Date:          date,
		Time:          r.Time,
		DurationHours: r.Duration,
		Address:       r.Address,
		Phone:         r.Phone,
		Notes:         r.Notes,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		TotalAmount:   r.TotalAmount,
		Status:        domain.BookingStatus(r.Status),
		CreatedAt:     r.CreatedAt,
	}, nil
}

// parseDate принимает "2006-01-02", а также полную метку времени RFC3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(domain.DateFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
