package booking_wizard

import (
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

// Step шаг мастера бронирования
type Step int

const (
	StepServiceSelection  Step = 1 // услуга, дата, время, длительность
	StepSchedule          Step = 2 // адрес, телефон, комментарий
	StepContactAndPayment Step = 3 // итог и способ оплаты
)

// String возвращает название шага
func (s Step) String() string {
	switch s {
	case StepServiceSelection:
		return "service-selection"
	case StepSchedule:
		return "schedule"
	case StepContactAndPayment:
		return "contact-and-payment"
	default:
		return "unknown"
	}
}

// Draft черновик бронирования у одного исполнителя.
// Переходы строго линейные: 1 -> 2 -> 3, Back сохраняет все введённые поля.
type Draft struct {
	Provider domain.Provider
	Step     Step

	Service       string
	Date          time.Time
	Time          domain.TimeSlot // пусто, пока слот не выбран
	DurationHours int

	Address       string
	Phone         string
	Notes         string
	PaymentMethod domain.PaymentMethod
}

func newDraft(provider domain.Provider, today time.Time) *Draft {
	d := &Draft{Provider: provider}
	d.reset(today)
	return d
}

// reset сбрасывает все поля и возвращает мастер на первый шаг
func (d *Draft) reset(today time.Time) {
	d.Step = StepServiceSelection
	d.Service = ""
	d.Date = startOfDay(today)
	d.Time = ""
	d.DurationHours = domain.DefaultDurationHours
	d.Address = ""
	d.Phone = ""
	d.Notes = ""
	d.PaymentMethod = ""
}

// CanAdvance сообщает, разрешён ли переход на следующий шаг
func (d *Draft) CanAdvance() bool {
	switch d.Step {
	case StepServiceSelection:
		return d.Service != "" && d.Time != ""
	case StepSchedule:
		return true
	default:
		return false
	}
}

// Next переходит на следующий шаг; при блокировке состояние не меняется
func (d *Draft) Next() error {
	if !d.CanAdvance() {
		return ErrCannotAdvance
	}
	d.Step++
	return nil
}

// Back возвращается на предыдущий шаг, сохраняя введённые данные
func (d *Draft) Back() error {
	if d.Step == StepServiceSelection {
		return ErrAtFirstStep
	}
	d.Step--
	return nil
}

// Total стоимость: почасовая ставка исполнителя, умноженная на длительность
func (d *Draft) Total() float64 {
	return d.Provider.TotalFor(d.DurationHours)
}

// missingFields возвращает незаполненные обязательные поля для отправки
func (d *Draft) missingFields() []string {
	missing := make([]string, 0)
	if d.Service == "" {
		missing = append(missing, "service")
	}
	if d.Date.IsZero() {
		missing = append(missing, "date")
	}
	if d.Time == "" {
		missing = append(missing, "time")
	}
	if d.Address == "" {
		missing = append(missing, "address")
	}
	if d.Phone == "" {
		missing = append(missing, "phone")
	}
	if d.PaymentMethod == "" {
		missing = append(missing, "paymentMethod")
	}
	return missing
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
