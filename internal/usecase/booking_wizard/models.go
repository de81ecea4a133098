package booking_wizard

import (
	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	bookingModels "github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
)

// ServiceInput поля первого шага
type ServiceInput struct {
	Service       string `json:"service"`
	Date          string `json:"date"` // "2024-01-22"; пусто - без изменений
	Time          string `json:"time"` // "09:00"; пусто - слот не выбран
	DurationHours int    `json:"duration"`
}

// DetailsInput поля второго шага
type DetailsInput struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// PaymentInput поле третьего шага
type PaymentInput struct {
	PaymentMethod string `json:"paymentMethod"`
}

// SlotOption вариант времени
type SlotOption struct {
	Value string `json:"value"` // "13:00"
	Label string `json:"label"` // "01:00 PM"
}

// DateOption вариант даты
type DateOption struct {
	Value string `json:"value"` // "2024-01-22"
	Label string `json:"label"` // "Today", "Tomorrow", "Jan 24"
}

// View состояние мастера для отображения
type View struct {
	ID            string   `json:"id"`
	ProviderID    string   `json:"providerId"`
	ProviderName  string   `json:"providerName"`
	HourlyRate    float64  `json:"hourlyRate"`
	Services      []string `json:"services"`
	Step          int      `json:"step"`
	StepName      string   `json:"stepName"`
	CanAdvance    bool     `json:"canAdvance"`
	Service       string   `json:"service"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	TimeLabel     string   `json:"timeLabel"`
	Duration      int      `json:"duration"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Notes         string   `json:"notes"`
	PaymentMethod string   `json:"paymentMethod"`
	Total         float64  `json:"total"`

	Dates     []DateOption `json:"dates"`
	TimeSlots []SlotOption `json:"timeSlots"`
	Durations []int        `json:"durations"`
}

// Confirmation результат успешной отправки
type Confirmation struct {
	Title   string                        `json:"title"`
	Message string                        `json:"message"`
	Booking bookingModels.BookingResponse `json:"booking"`
}

func slotOptions() []SlotOption {
	options := make([]SlotOption, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		options = append(options, SlotOption{Value: slot.String(), Label: slot.Label()})
	}
	return options
}
