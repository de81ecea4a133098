package models

import (
	bookingModels "github.com/m04kA/SMC-UrbanServices/internal/service/bookings/models"
	catalogModels "github.com/m04kA/SMC-UrbanServices/internal/service/catalog/models"
)

// Reference ссылка на исполнителя или услугу.
// Known=false означает, что ссылка не разрешилась по каталогу.
type Reference struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

// BookingView бронирование с разрешёнными ссылками на каталог
type BookingView struct {
	bookingModels.BookingResponse
	ProviderRef Reference `json:"providerRef"`
	ServiceRef  Reference `json:"serviceRef"`
}

// ReviewResponse отзыв
type ReviewResponse struct {
	ID           string `json:"id"`
	BookingID    string `json:"bookingId"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	ProviderID   string `json:"providerId"`
	ServiceID    string `json:"serviceId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"createdAt"`
}

// CustomerDashboard панель клиента
type CustomerDashboard struct {
	Role           string        `json:"role"`
	Upcoming       []BookingView `json:"upcoming"`
	RecentActivity []BookingView `json:"recentActivity"`
	UpcomingCount  int           `json:"upcomingCount"`
	CompletedCount int           `json:"completedCount"`
	TotalBookings  int           `json:"totalBookings"`
	TotalSpent     float64       `json:"totalSpent"`
}

// ProviderDashboard панель исполнителя
type ProviderDashboard struct {
	Role          string                          `json:"role"`
	Bookings      []BookingView                   `json:"bookings"`
	TodayBookings []BookingView                   `json:"todayBookings"`
	Services      []catalogModels.ServiceResponse `json:"services"`
	Reviews       []ReviewResponse                `json:"reviews"`
	TotalBookings int                             `json:"totalBookings"`
	Earnings      float64                         `json:"earnings"`
	AverageRating float64                         `json:"averageRating"`
}

// AdminDashboard панель администратора
type AdminDashboard struct {
	Role                string           `json:"role"`
	TotalBookings       int              `json:"totalBookings"`
	TotalProviders      int              `json:"totalProviders"`
	PlatformRevenue     float64          `json:"platformRevenue"`
	PendingBookings     int              `json:"pendingBookings"`
	ActiveServices      int              `json:"activeServices"`
	VerifiedProviders   int              `json:"verifiedProviders"`
	UnverifiedProviders int              `json:"unverifiedProviders"`
	RecentBookings      []BookingView    `json:"recentBookings"`
	RecentReviews       []ReviewResponse `json:"recentReviews"`
}

// CustomerProfile профиль клиента, собранный по его бронированиям
type CustomerProfile struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	Address           string           `json:"address"`
	TotalBookings     int              `json:"totalBookings"`
	CompletedBookings int              `json:"completedBookings"`
	TotalSpent        float64          `json:"totalSpent"`
	Bookings          []BookingView    `json:"bookings"`
	Reviews           []ReviewResponse `json:"reviews"`
}

// ProviderProfile профиль исполнителя
type ProviderProfile struct {
	ID                string                          `json:"id"`
	Name              string                          `json:"name"`
	Email             string                          `json:"email"`
	Phone             string                          `json:"phone"`
	Location          string                          `json:"location"`
	Address           string                          `json:"address"`
	Pincode           string                          `json:"pincode"`
	Description       string                          `json:"description"`
	Specialties       []string                        `json:"specialties"`
	ExperienceYears   int                             `json:"experience"`
	Verified          bool                            `json:"verified"`
	HourlyRate        float64                         `json:"hourlyRate"`
	Rating            float64                         `json:"rating"`
	ReviewCount       int                             `json:"reviewCount"`
	TotalBookings     int                             `json:"totalBookings"`
	CompletedBookings int                             `json:"completedBookings"`
	Earnings          float64                         `json:"earnings"`
	AverageRating     float64                         `json:"averageRating"`
	Services          []catalogModels.ServiceResponse `json:"services"`
	Bookings          []BookingView                   `json:"bookings"`
	Reviews           []ReviewResponse                `json:"reviews"`
}

// BookingDetails детали бронирования для администратора
type BookingDetails struct {
	BookingView
	Commission     float64 `json:"commission"`
	ProviderPayout float64 `json:"providerPayout"`
}
