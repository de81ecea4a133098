package booking_wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	bookingModels "github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
)

// confirmationTitle заголовок уведомления об успешном бронировании
const confirmationTitle = "Booking Confirmed!"

// UseCase мастер бронирования.
// Черновики хранятся в памяти процесса по UUID, чтобы шагами можно было управлять через HTTP.
type UseCase struct {
	mu     sync.Mutex
	drafts map[string]*Draft

	bookingRepo  BookingRepository
	catalog      Catalog
	session      SessionHolder
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog Catalog,
	session SessionHolder,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:       make(map[string]*Draft),
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		session:      session,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Open открывает мастер для исполнителя
func (uc *UseCase) Open(providerID string) (*View, error) {
	provider, ok := uc.catalog.ProviderByID(providerID)
	if !ok {
		uc.logger.Warn("BookingWizard.Open: provider id=%s not found", providerID)
		return nil, ErrProviderNotFound
	}
	if !provider.Available {
		uc.logger.Warn("BookingWizard.Open: provider id=%s is not available", providerID)
		return nil, ErrProviderUnavailable
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uc.newID()
	draft := newDraft(*provider, uc.timeProvider.Now())
	uc.drafts[id] = draft
	uc.metrics.SetWizardsOpen(len(uc.drafts))

	uc.logger.Info("BookingWizard.Open: wizard=%s opened for provider=%s", id, providerID)
	return uc.view(id, draft), nil
}

// Get возвращает текущее состояние мастера
func (uc *UseCase) Get(id string) (*View, error) {
	return uc.apply(id, func(*Draft) error { return nil })
}

// SetService заполняет поля первого шага
func (uc *UseCase) SetService(id string, in *ServiceInput) (*View, error) {
	now := uc.timeProvider.Now()
	return uc.apply(id, func(d *Draft) error {
		if d.Step != StepServiceSelection {
			return ErrWrongStep
		}

		service := strings.TrimSpace(in.Service)
		if err := validateService(d.Provider, service); err != nil {
			return err
		}

		date := d.Date
		if in.Date != "" {
			parsed, err := parseDate(in.Date, now)
			if err != nil {
				return err
			}
			date = parsed
		}

		slot, err := parseTimeSlot(in.Time)
		if err != nil {
			return err
		}

		duration := d.DurationHours
		if in.DurationHours != 0 {
			if err := validateDuration(in.DurationHours); err != nil {
				return err
			}
			duration = in.DurationHours
		}

		d.Service = service
		d.Date = date
		d.Time = slot
		d.DurationHours = duration
		return nil
	})
}

// SetDetails заполняет поля второго шага
func (uc *UseCase) SetDetails(id string, in *DetailsInput) (*View, error) {
	return uc.apply(id, func(d *Draft) error {
		if d.Step != StepSchedule {
			return ErrWrongStep
		}
		d.Address = strings.TrimSpace(in.Address)
		d.Phone = strings.TrimSpace(in.Phone)
		d.Notes = strings.TrimSpace(in.Notes)
		return nil
	})
}

// SetPayment выбирает способ оплаты на третьем шаге
func (uc *UseCase) SetPayment(id string, in *PaymentInput) (*View, error) {
	return uc.apply(id, func(d *Draft) error {
		if d.Step != StepContactAndPayment {
			return ErrWrongStep
		}
		method, err := parsePaymentMethod(in.PaymentMethod)
		if err != nil {
			return err
		}
		d.PaymentMethod = method
		return nil
	})
}

// Next переходит на следующий шаг
func (uc *UseCase) Next(id string) (*View, error) {
	return uc.apply(id, func(d *Draft) error { return d.Next() })
}

// Back возвращается на предыдущий шаг
func (uc *UseCase) Back(id string) (*View, error) {
	return uc.apply(id, func(d *Draft) error { return d.Back() })
}

// Close закрывает мастер без создания бронирования
func (uc *UseCase) Close(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.drafts[id]; !ok {
		return ErrWizardNotFound
	}
	delete(uc.drafts, id)
	uc.metrics.SetWizardsOpen(len(uc.drafts))

	uc.logger.Info("BookingWizard.Close: wizard=%s closed", id)
	return nil
}

// Submit создает бронирование со статусом pending, сбрасывает и закрывает мастер.
// При незаполненных полях возвращает ErrMissingInformation и ничего не создаёт.
func (uc *UseCase) Submit(ctx context.Context, id string) (*Confirmation, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	draft, ok := uc.drafts[id]
	if !ok {
		return nil, ErrWizardNotFound
	}

	if draft.Step != StepContactAndPayment {
		uc.logger.Warn("BookingWizard.Submit: wizard=%s is at step %d", id, draft.Step)
		return nil, ErrWrongStep
	}

	if missing := draft.missingFields(); len(missing) > 0 {
		uc.logger.Warn("BookingWizard.Submit: wizard=%s missing fields: %s", id, strings.Join(missing, ", "))
		return nil, fmt.Errorf("%w: %s", ErrMissingInformation, strings.Join(missing, ", "))
	}

	now := uc.timeProvider.Now()

	bookingID, err := uc.nextBookingID(ctx, now)
	if err != nil {
		uc.logger.Error("BookingWizard.Submit: failed to generate booking id: %v", err)
		return nil, fmt.Errorf("%w: failed to generate booking id: %v", ErrInternal, err)
	}

	createdAt := now.UTC()
	booking := &domain.Booking{
		ID:            bookingID,
		ProviderID:    draft.Provider.ID,
		ProviderName:  draft.Provider.Name,
		Service:       draft.Service,
		Date:          draft.Date,
		Time:          draft.Time.String(),
		DurationHours: draft.DurationHours,
		Address:       draft.Address,
		Phone:         draft.Phone,
		Notes:         draft.Notes,
		PaymentMethod: draft.PaymentMethod,
		TotalAmount:   draft.Total(),
		Status:        domain.StatusPending,
		CreatedAt:     &createdAt,
	}
	if identity, ok := uc.session.Current(); ok {
		booking.CustomerID = identity.ID
		booking.CustomerName = identity.Name
	}

	if err := uc.bookingRepo.Append(ctx, booking); err != nil {
		uc.logger.Error("BookingWizard.Submit: failed to save booking for wizard=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}
	uc.metrics.BookingCreated(string(booking.PaymentMethod))

	message := fmt.Sprintf("Your booking with %s has been confirmed for %s at %s",
		draft.Provider.Name, draft.Date.Format(domain.DisplayDateFormat), draft.Time.Label())

	draft.reset(now)
	delete(uc.drafts, id)
	uc.metrics.SetWizardsOpen(len(uc.drafts))

	uc.logger.Info("BookingWizard.Submit: created booking id=%s provider=%s total=%.2f",
		booking.ID, booking.ProviderID, booking.TotalAmount)

	return &Confirmation{
		Title:   confirmationTitle,
		Message: message,
		Booking: *bookingModels.FromDomainBooking(booking),
	}, nil
}

// nextBookingID формирует ID вида "booking_<unix millis>",
// сдвигая метку на миллисекунду, пока ID занят
func (uc *UseCase) nextBookingID(ctx context.Context, now time.Time) (string, error) {
	millis := now.UnixMilli()
	for {
		id := "booking_" + strconv.FormatInt(millis, 10)
		exists, err := uc.bookingRepo.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
		millis++
	}
}

// apply выполняет изменение черновика под блокировкой.
// При ошибке изменения черновик остаётся прежним.
func (uc *UseCase) apply(id string, fn func(d *Draft) error) (*View, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	draft, ok := uc.drafts[id]
	if !ok {
		return nil, ErrWizardNotFound
	}

	if err := fn(draft); err != nil {
		uc.logger.Warn("BookingWizard: wizard=%s step=%d: %v", id, draft.Step, err)
		return nil, err
	}

	return uc.view(id, draft), nil
}

func (uc *UseCase) view(id string, d *Draft) *View {
	now := uc.timeProvider.Now()

	dates := make([]DateOption, 0, domain.BookingWindowDays)
	for i, date := range bookingWindow(now) {
		label := date.Format("Jan 02")
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}
		dates = append(dates, DateOption{Value: date.Format(domain.DateFormat), Label: label})
	}

	timeLabel := ""
	if d.Time != "" {
		timeLabel = d.Time.Label()
	}

	return &View{
		ID:            id,
		ProviderID:    d.Provider.ID,
		ProviderName:  d.Provider.Name,
		HourlyRate:    d.Provider.HourlyRate,
		Services:      append([]string{}, d.Provider.Specialties...),
		Step:          int(d.Step),
		StepName:      d.Step.String(),
		CanAdvance:    d.CanAdvance(),
		Service:       d.Service,
		Date:          d.Date.Format(domain.DateFormat),
		Time:          d.Time.String(),
		TimeLabel:     timeLabel,
		Duration:      d.DurationHours,
		Address:       d.Address,
		Phone:         d.Phone,
		Notes:         d.Notes,
		PaymentMethod: string(d.PaymentMethod),
		Total:         d.Total(),
		Dates:         dates,
		TimeSlots:     slotOptions(),
		Durations:     append([]int{}, domain.DurationOptions...),
	}
}
