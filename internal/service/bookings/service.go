package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	bookingRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/booking"
	"github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает бронирования, подходящие под фильтр
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// ProviderBookings возвращает страницу бронирований исполнителя (по domain.BookingsPerPage на странице).
// Страница за пределами списка возвращается пустой.
func (s *Service) ProviderBookings(ctx context.Context, providerID string, page int) (*models.BookingPageResponse, error) {
	if page < 1 {
		s.logger.Warn("ProviderBookings: invalid page=%d for provider=%s", page, providerID)
		return nil, fmt.Errorf("%w: page must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ProviderBookings: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: ProviderBookings - repository error: %v", ErrInternal, err)
	}

	perPage := domain.BookingsPerPage
	totalPages := (len(bookings) + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(bookings) {
		start = len(bookings)
	}
	if end > len(bookings) {
		end = len(bookings)
	}

	return &models.BookingPageResponse{
		Bookings:   models.FromDomainBookings(bookings[start:end]),
		Page:       page,
		PerPage:    perPage,
		Total:      len(bookings),
		TotalPages: totalPages,
	}, nil
}

// MostRecent возвращает до limit последних бронирований
func (s *Service) MostRecent(ctx context.Context, limit int) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.MostRecent(ctx, limit)
	if err != nil {
		s.logger.Error("MostRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: MostRecent - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Повторная отмена уже отменённого бронирования не является ошибкой.
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	if _, err := s.getBooking(ctx, "Cancel", id); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	s.metrics.BookingStatusChanged(string(domain.StatusCancelled))

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return s.GetByID(ctx, id)
}

// UpdateStatus перезаписывает статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	if _, err := s.getBooking(ctx, "UpdateStatus", id); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SetStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}
	s.metrics.BookingStatusChanged(string(status))

	s.logger.Info("UpdateStatus: booking id=%s now has status=%s", id, status)
	return s.GetByID(ctx, id)
}

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
