package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования (сегодня + 6 дней)
func validateDate(requestDate time.Time, now time.Time) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	lastDate := dateOnly(now).AddDate(0, 0, domain.BookingWindowDays-1)
	if dateOnly(requestDate).After(lastDate) {
		return fmt.Errorf("%w: can only book %d days ahead", ErrDateTooFarInFuture, domain.BookingWindowDays-1)
	}

	return nil
}
