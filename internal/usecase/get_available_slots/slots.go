package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// buildSlots возвращает все фиксированные слоты дня.
// Слот недоступен, если исполнитель не принимает заказы или (для сегодняшней даты) слот уже начался.
func buildSlots(requestDate time.Time, now time.Time, providerAvailable bool) ([]domain.AvailableSlot, error) {
	slots := make([]domain.AvailableSlot, 0, len(domain.TimeSlots))

	for _, slot := range domain.TimeSlots {
		start, err := slot.StartOn(requestDate)
		if err != nil {
			return nil, err
		}

		available := providerAvailable
		if isSameDay(requestDate, now) && !start.After(now) {
			available = false
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime: slot,
			Label:     slot.Label(),
			Available: available,
		})
	}

	return slots, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
