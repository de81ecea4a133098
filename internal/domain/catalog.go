package domain

import "time"

// Category категория услуг
type Category struct {
	ID            string
	Name          string
	Icon          string
	ProviderCount int
}

// Service represents a service offered in the catalog
type Service struct {
	ID              string
	Name            string
	Category        string
	Description     string
	Price           float64
	DurationMinutes int
	Rating          float64
	ReviewCount     int
	ProviderID      string
	Available       bool
}

// AvailabilityWindow окно доступности исполнителя
type AvailabilityWindow struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
	Available bool
}

// Provider represents a service provider in the catalog
type Provider struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Location        string
	ServiceIDs      []string
	Specialties     []string // названия направлений для поиска, например "AC Repair"
	Rating          float64
	ReviewCount     int
	ExperienceYears int
	Verified        bool
	Description     string
	Address         string
	Pincode         string
	HourlyRate      float64
	ResponseTime    string
	Available       bool
	Availability    []AvailabilityWindow
}

// OffersSpecialty returns true if the provider lists the given specialty exactly
func (p *Provider) OffersSpecialty(specialty string) bool {
	for _, s := range p.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// TotalFor returns the price of a booking of the given duration
func (p *Provider) TotalFor(durationHours int) float64 {
	return p.HourlyRate * float64(durationHours)
}

// Review отзыв клиента об исполнителе
type Review struct {
	ID           string
	BookingID    string
	CustomerID   string
	CustomerName string
	ProviderID   string
	ServiceID    string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}
