package booking_wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// validateService проверяет, что исполнитель оказывает услугу
func validateService(provider domain.Provider, service string) error {
	if service == "" {
		return nil
	}
	if !provider.OffersSpecialty(service) {
		return fmt.Errorf("%w: %q", ErrUnknownService, service)
	}
	return nil
}

// parseDate разбирает дату и проверяет, что она попадает в окно бронирования
func parseDate(value string, now time.Time) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	for _, d := range bookingWindow(now) {
		if d.Equal(date) {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, value)
}

// parseTimeSlot разбирает время; пустая строка снимает выбор слота
func parseTimeSlot(value string) (domain.TimeSlot, error) {
	if value == "" {
		return "", nil
	}
	slot, err := domain.ParseTimeSlot(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTimeSlot, value)
	}
	return slot, nil
}

func validateDuration(hours int) error {
	if !domain.IsValidDuration(hours) {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, hours)
	}
	return nil
}

func parsePaymentMethod(value string) (domain.PaymentMethod, error) {
	method := domain.PaymentMethod(strings.TrimSpace(value))
	if !method.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, value)
	}
	return method, nil
}

// bookingWindow возвращает даты, доступные для бронирования: сегодня и шесть дней вперёд
func bookingWindow(now time.Time) []time.Time {
	today := startOfDay(now)
	dates := make([]time.Time, 0, domain.BookingWindowDays)
	for i := 0; i < domain.BookingWindowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}
