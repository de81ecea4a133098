package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListBookingsRequest запрос списка бронирований с фильтрами
type ListBookingsRequest struct {
	ProviderID *string `json:"providerId,omitempty"`
	CustomerID *string `json:"customerId,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ProviderID: r.ProviderID,
		CustomerID: r.CustomerID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string     `json:"id"`
	ProviderID    string     `json:"providerId"`
	ProviderName  string     `json:"providerName"`
	Service       string     `json:"service"`
	ServiceID     string     `json:"serviceId,omitempty"`
	CustomerID    string     `json:"customerId,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
	Date          string     `json:"date"`      // "2024-01-22"
	Time          string     `json:"time"`      // "10:00"
	TimeLabel     string     `json:"timeLabel"` // "10:00 AM"
	Duration      int        `json:"duration"`  // часы
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	Notes         string     `json:"notes"`
	PaymentMethod string     `json:"paymentMethod"`
	TotalAmount   float64    `json:"totalAmount"`
	Status        string     `json:"status"`
	Badge         string     `json:"badge"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BookingPageResponse страница бронирований исполнителя
type BookingPageResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// Конвертеры

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		ProviderID:    b.ProviderID,
		ProviderName:  b.ProviderName,
		Service:       b.Service,
		ServiceID:     b.ServiceID,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		Date:          b.Date.Format(domain.DateFormat),
		Time:          b.Time,
		TimeLabel:     domain.TimeSlot(b.Time).Label(),
		Duration:      b.DurationHours,
		Address:       b.Address,
		Phone:         b.Phone,
		Notes:         b.Notes,
		PaymentMethod: string(b.PaymentMethod),
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		Badge:         string(domain.StatusBadge(b.Status)),
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	return &BookingListResponse{
		Bookings: FromDomainBookings(bookings),
		Total:    len(bookings),
	}
}

// FromDomainBookings конвертирует список domain.Booking в срез ответов
func FromDomainBookings(bookings []*domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, *FromDomainBooking(b))
	}
	return responses
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
