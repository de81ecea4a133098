package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// PaymentMethod способ оплаты, выбранный в мастере бронирования
type PaymentMethod string

const (
	PaymentOnlineGateway  PaymentMethod = "razorpay"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

// IsValid returns true if the payment method is one of the supported options
func (p PaymentMethod) IsValid() bool {
	return p == PaymentOnlineGateway || p == PaymentCashOnDelivery
}

// Booking represents a scheduled service engagement between a customer and a provider
type Booking struct {
	ID           string
	ProviderID   string
	ProviderName string
	Service      string
	ServiceID    string // пусто для бронирований, созданных мастером
	CustomerID   string // пусто, если бронирование создано без активной сессии
	CustomerName string

	Date          time.Time
	Time          string // "09:00"
	DurationHours int

	Address       string
	Phone         string
	Notes         string
	PaymentMethod PaymentMethod

	// Snapshot of hourlyRate × DurationHours at creation time
	TotalAmount float64
	Status      BookingStatus

	CreatedAt *time.Time
}

// IsActive returns true if the booking is still expected to happen
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// IsRecentActivity returns true for bookings shown in the customer's activity feed
func (b *Booking) IsRecentActivity() bool {
	return b.Status == StatusInProgress || b.Status == StatusCompleted || b.Status == StatusCancelled
}

// SortTime возвращает время для сортировки "сначала новые":
// createdAt, а если он отсутствует - дату бронирования
func (b *Booking) SortTime() time.Time {
	if b.CreatedAt != nil {
		return *b.CreatedAt
	}
	return b.Date
}

// Commission returns the platform share of the booking amount
func (b *Booking) Commission() float64 {
	return b.TotalAmount * CommissionRate
}

// ProviderPayout returns the provider share of the booking amount
func (b *Booking) ProviderPayout() float64 {
	return b.TotalAmount * ProviderShareRate
}

// AllStatuses список всех допустимых статусов
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// DisplayCategory визуальная категория статуса (цвет бейджа)
type DisplayCategory string

const (
	DisplaySuccess     DisplayCategory = "success"
	DisplayWarning     DisplayCategory = "warning"
	DisplayInfo        DisplayCategory = "info"
	DisplaySecondary   DisplayCategory = "secondary"
	DisplayDestructive DisplayCategory = "destructive"
)

// StatusBadge maps every status to its display category.
// Unknown statuses fall back to DisplaySecondary.
func StatusBadge(status BookingStatus) DisplayCategory {
	switch status {
	case StatusConfirmed:
		return DisplaySuccess
	case StatusPending:
		return DisplayWarning
	case StatusInProgress:
		return DisplayInfo
	case StatusCompleted:
		return DisplaySecondary
	case StatusCancelled:
		return DisplayDestructive
	default:
		return DisplaySecondary
	}
}

// BookingsFilter фильтр для выборки бронирований из хранилища
type BookingsFilter struct {
	ProviderID *string        // Фильтр по исполнителю (опционально)
	CustomerID *string        // Фильтр по клиенту (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
}

// Matches returns true if the booking satisfies every non-nil filter field
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.ProviderID != nil && b.ProviderID != *f.ProviderID {
		return false
	}
	if f.CustomerID != nil && b.CustomerID != *f.CustomerID {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	return true
}
