package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
	bookingRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/booking"
	bookingModels "github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
	catalogModels "github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"
	"github.com/m04kA/SMC-UrbanServices/internal/service/dashboard/models"
)

const recentReviewsLimit = 3

// Service сервис панелей управления и профилей.
// Все агрегаты вычисляются заново при каждом запросе и ничего не записывают.
type Service struct {
	bookingRepo  BookingRepository
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса панелей
func NewService(bookingRepo BookingRepository, catalog Catalog, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ForIdentity возвращает панель, соответствующую роли пользователя
func (s *Service) ForIdentity(ctx context.Context, identity *domain.Identity) (interface{}, error) {
	switch identity.Role {
	case domain.RoleCustomer:
		return s.CustomerDashboard(ctx, identity.ID)
	case domain.RoleProvider:
		return s.ProviderDashboard(ctx, identity.ID)
	case domain.RoleAdmin:
		return s.AdminDashboard(ctx)
	default:
		s.logger.Warn("ForIdentity: unsupported role=%s for user=%s", identity.Role, identity.ID)
		return nil, ErrUnsupportedRole
	}
}

// CustomerDashboard панель клиента
func (s *Service) CustomerDashboard(ctx context.Context, customerID string) (*models.CustomerDashboard, error) {
	bookings, err := s.bookingRepo.ByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("CustomerDashboard: repository error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: CustomerDashboard - repository error: %v", ErrInternal, err)
	}

	upcoming := make([]models.BookingView, 0)
	recent := make([]models.BookingView, 0)
	completed := 0
	for _, b := range bookings {
		if b.IsActive() {
			upcoming = append(upcoming, s.view(b))
		}
		if b.IsRecentActivity() {
			recent = append(recent, s.view(b))
		}
		if b.IsCompleted() {
			completed++
		}
	}

	return &models.CustomerDashboard{
		Role:           string(domain.RoleCustomer),
		Upcoming:       upcoming,
		RecentActivity: recent,
		UpcomingCount:  len(upcoming),
		CompletedCount: completed,
		TotalBookings:  len(bookings),
		TotalSpent:     totalAmount(bookings),
	}, nil
}

// ProviderDashboard панель исполнителя
func (s *Service) ProviderDashboard(ctx context.Context, providerID string) (*models.ProviderDashboard, error) {
	bookings, err := s.bookingRepo.ByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ProviderDashboard: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: ProviderDashboard - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	today := make([]models.BookingView, 0)
	for _, b := range bookings {
		if isSameDay(b.Date, now) {
			today = append(today, s.view(b))
		}
	}

	reviews := s.catalog.ReviewsByProvider(providerID)

	return &models.ProviderDashboard{
		Role:          string(domain.RoleProvider),
		Bookings:      s.views(bookings),
		TodayBookings: today,
		Services:      toServiceResponses(s.catalog.ServicesByProvider(providerID)),
		Reviews:       toReviewResponses(reviews),
		TotalBookings: len(bookings),
		Earnings:      completedAmount(bookings),
		AverageRating: averageRating(reviews),
	}, nil
}

// AdminDashboard панель администратора
func (s *Service) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	bookings, err := s.bookingRepo.Load(ctx)
	if err != nil {
		s.logger.Error("AdminDashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminDashboard - repository error: %v", ErrInternal, err)
	}

	recent, err := s.bookingRepo.MostRecent(ctx, domain.DefaultRecentLimit)
	if err != nil {
		s.logger.Error("AdminDashboard: repository error for recent bookings: %v", err)
		return nil, fmt.Errorf("%w: AdminDashboard - repository error: %v", ErrInternal, err)
	}

	pending := 0
	for _, b := range bookings {
		if b.Status == domain.StatusPending {
			pending++
		}
	}

	activeServices := 0
	for _, svc := range s.catalog.Services() {
		if svc.Available {
			activeServices++
		}
	}

	providers := s.catalog.Providers()
	verified := 0
	for _, p := range providers {
		if p.Verified {
			verified++
		}
	}

	reviews := s.catalog.Reviews()
	if len(reviews) > recentReviewsLimit {
		reviews = reviews[:recentReviewsLimit]
	}

	return &models.AdminDashboard{
		Role:                string(domain.RoleAdmin),
		TotalBookings:       len(bookings),
		TotalProviders:      len(providers),
		PlatformRevenue:     completedAmount(bookings) * domain.CommissionRate,
		PendingBookings:     pending,
		ActiveServices:      activeServices,
		VerifiedProviders:   verified,
		UnverifiedProviders: len(providers) - verified,
		RecentBookings:      s.views(recent),
		RecentReviews:       toReviewResponses(reviews),
	}, nil
}

// CustomerProfile профиль клиента; клиент без бронирований считается не найденным
func (s *Service) CustomerProfile(ctx context.Context, customerID string) (*models.CustomerProfile, error) {
	bookings, err := s.bookingRepo.ByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("CustomerProfile: repository error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: CustomerProfile - repository error: %v", ErrInternal, err)
	}
	if len(bookings) == 0 {
		s.logger.Warn("CustomerProfile: customer=%s has no bookings", customerID)
		return nil, ErrCustomerNotFound
	}

	first := bookings[0]
	completed := 0
	for _, b := range bookings {
		if b.IsCompleted() {
			completed++
		}
	}

	reviews := make([]domain.Review, 0)
	for _, r := range s.catalog.Reviews() {
		if r.CustomerID == customerID {
			reviews = append(reviews, r)
		}
	}

	return &models.CustomerProfile{
		ID:                customerID,
		Name:              first.CustomerName,
		Email:             customerEmail(first.CustomerName),
		Phone:             first.Phone,
		Address:           first.Address,
		TotalBookings:     len(bookings),
		CompletedBookings: completed,
		TotalSpent:        totalAmount(bookings),
		Bookings:          s.views(bookings),
		Reviews:           toReviewResponses(reviews),
	}, nil
}

// ProviderProfile профиль исполнителя; заработок - доля исполнителя от завершённых бронирований
func (s *Service) ProviderProfile(ctx context.Context, providerID string) (*models.ProviderProfile, error) {
	provider, ok := s.catalog.ProviderByID(providerID)
	if !ok {
		s.logger.Warn("ProviderProfile: provider=%s not found", providerID)
		return nil, ErrProviderNotFound
	}

	bookings, err := s.bookingRepo.ByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ProviderProfile: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: ProviderProfile - repository error: %v", ErrInternal, err)
	}

	completed := 0
	for _, b := range bookings {
		if b.IsCompleted() {
			completed++
		}
	}

	reviews := s.catalog.ReviewsByProvider(providerID)

	return &models.ProviderProfile{
		ID:                provider.ID,
		Name:              provider.Name,
		Email:             provider.Email,
		Phone:             provider.Phone,
		Location:          provider.Location,
		Address:           provider.Address,
		Pincode:           provider.Pincode,
		Description:       provider.Description,
		Specialties:       append([]string{}, provider.Specialties...),
		ExperienceYears:   provider.ExperienceYears,
		Verified:          provider.Verified,
		HourlyRate:        provider.HourlyRate,
		Rating:            provider.Rating,
		ReviewCount:       provider.ReviewCount,
		TotalBookings:     len(bookings),
		CompletedBookings: completed,
		Earnings:          completedAmount(bookings) * domain.ProviderShareRate,
		AverageRating:     averageRating(reviews),
		Services:          toServiceResponses(s.catalog.ServicesByProvider(providerID)),
		Bookings:          s.views(bookings),
		Reviews:           toReviewResponses(reviews),
	}, nil
}

// BookingDetails детали бронирования с комиссией платформы и выплатой исполнителю
func (s *Service) BookingDetails(ctx context.Context, id string) (*models.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("BookingDetails: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("BookingDetails: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: BookingDetails - repository error: %v", ErrInternal, err)
	}

	return &models.BookingDetails{
		BookingView:    s.view(booking),
		Commission:     booking.Commission(),
		ProviderPayout: booking.ProviderPayout(),
	}, nil
}

// view разрешает ссылки бронирования по каталогу.
// Неразрешённая ссылка отображается как "unknown", без подстановки других данных.
func (s *Service) view(b *domain.Booking) models.BookingView {
	v := models.BookingView{
		BookingResponse: *bookingModels.FromDomainBooking(b),
		ProviderRef:     models.Reference{ID: b.ProviderID, Name: domain.UnknownProviderName},
		ServiceRef:      models.Reference{ID: b.ServiceID, Name: domain.UnknownServiceName},
	}

	if p, ok := s.catalog.ProviderByID(b.ProviderID); ok {
		v.ProviderRef.Name = p.Name
		v.ProviderRef.Known = true
	}

	switch {
	case b.ServiceID != "":
		if svc, ok := s.catalog.ServiceByID(b.ServiceID); ok {
			v.ServiceRef.Name = svc.Name
			v.ServiceRef.Known = true
		}
	case b.Service != "":
		// бронирования мастера хранят название услуги без ID
		v.ServiceRef.Name = b.Service
		v.ServiceRef.Known = true
	}

	return v
}

func (s *Service) views(bookings []*domain.Booking) []models.BookingView {
	result := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, s.view(b))
	}
	return result
}

func totalAmount(bookings []*domain.Booking) float64 {
	sum := 0.0
	for _, b := range bookings {
		sum += b.TotalAmount
	}
	return sum
}

func completedAmount(bookings []*domain.Booking) float64 {
	sum := 0.0
	for _, b := range bookings {
		if b.IsCompleted() {
			sum += b.TotalAmount
		}
	}
	return sum
}

// averageRating средняя оценка с точностью до десятых, 0 без отзывов
func averageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

// customerEmail демо-адрес вида "rajesh.kumar@example.com"
func customerEmail(name string) string {
	return strings.Replace(strings.ToLower(name), " ", ".", 1) + "@example.com"
}

func toServiceResponses(services []domain.Service) []catalogModels.ServiceResponse {
	result := make([]catalogModels.ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, catalogModels.FromDomainService(svc))
	}
	return result
}

func toReviewResponses(reviews []domain.Review) []models.ReviewResponse {
	result := make([]models.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, models.ReviewResponse{
			ID:           r.ID,
			BookingID:    r.BookingID,
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			ProviderID:   r.ProviderID,
			ServiceID:    r.ServiceID,
			Rating:       r.Rating,
			Comment:      r.Comment,
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
