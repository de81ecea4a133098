package catalog

import (
	"time"

	"github.com/m04kA/SMC-UrbanServices/internal/domain"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time {
	return &t
}

var categories = []domain.Category{
	{ID: "cleaning", Name: "Home Cleaning", Icon: "🏠", ProviderCount: 45},
	{ID: "repair", Name: "Repairs & Maintenance", Icon: "🔧", ProviderCount: 32},
	{ID: "beauty", Name: "Beauty & Wellness", Icon: "💄", ProviderCount: 28},
	{ID: "plumbing", Name: "Plumbing", Icon: "🚰", ProviderCount: 25},
	{ID: "electrical", Name: "Electrical", Icon: "⚡", ProviderCount: 18},
	{ID: "appliance", Name: "Appliance Repair", Icon: "📱", ProviderCount: 22},
	{ID: "painting", Name: "Painting", Icon: "🎨", ProviderCount: 15},
	{ID: "gardening", Name: "Gardening", Icon: "🌱", ProviderCount: 12},
}

var services = []domain.Service{
	{
		ID:              "1",
		Name:            "Deep House Cleaning",
		Category:        "cleaning",
		Description:     "Complete deep cleaning of your home including all rooms, kitchen, and bathrooms",
		Price:           2499,
		DurationMinutes: 240,
		Rating:          4.8,
		ReviewCount:     156,
		ProviderID:      "2",
		Available:       true,
	},
	{
		ID:              "2",
		Name:            "AC Service & Repair",
		Category:        "repair",
		Description:     "Professional AC cleaning, gas refilling, and repair services",
		Price:           899,
		DurationMinutes: 120,
		Rating:          4.6,
		ReviewCount:     89,
		ProviderID:      "2",
		Available:       true,
	},
	{
		ID:              "3",
		Name:            "Facial & Cleanup",
		Category:        "beauty",
		Description:     "Relaxing facial with deep cleansing and moisturizing treatment",
		Price:           1299,
		DurationMinutes: 90,
		Rating:          4.9,
		ReviewCount:     234,
		ProviderID:      "3",
		Available:       true,
	},
	{
		ID:              "4",
		Name:            "Bathroom Plumbing Fix",
		Category:        "plumbing",
		Description:     "Fix leaky taps, clogged drains, and other bathroom plumbing issues",
		Price:           599,
		DurationMinutes: 60,
		Rating:          4.7,
		ReviewCount:     67,
		ProviderID:      "4",
		Available:       true,
	},
}

var providers = []domain.Provider{
	{
		ID:           "1",
		Name:         "CleanHome Services",
		Location:     "South Delhi",
		Specialties:  []string{"Home Cleaning", "Deep Cleaning", "Kitchen Cleaning"},
		Rating:       4.8,
		ReviewCount:  156,
		HourlyRate:   150,
		ResponseTime: "< 2 hrs",
		Available:    true,
	},
	{
		ID:              "2",
		Name:            "Priya Sharma",
		Email:           "provider@demo.com",
		Phone:           "+91 87654 32109",
		Location:        "Lajpat Nagar, Delhi",
		ServiceIDs:      []string{"1", "2"},
		Specialties:     []string{"AC Repair", "Appliance Service", "Home Cleaning"},
		Rating:          4.7,
		ReviewCount:     89,
		ExperienceYears: 3,
		Verified:        true,
		Description:     "Professional home service provider with 3+ years of experience",
		Address:         "B-456, Lajpat Nagar",
		Pincode:         "110024",
		HourlyRate:      200,
		ResponseTime:    "< 1 hr",
		Available:       true,
		Availability: []domain.AvailabilityWindow{
			{ID: "slot1", Date: "2024-01-20", StartTime: "09:00", EndTime: "17:00", Available: true},
		},
	},
	{
		ID:              "3",
		Name:            "BeautyPro Delhi",
		Email:           "meera@beauty.com",
		Phone:           "+91 98765 43210",
		Location:        "Khan Market, Delhi",
		ServiceIDs:      []string{"3"},
		Specialties:     []string{"Beauty & Wellness", "Facial", "Massage"},
		Rating:          4.9,
		ReviewCount:     234,
		ExperienceYears: 5,
		Verified:        true,
		Description:     "Certified beauty professional specializing in skincare treatments",
		Address:         "C-789, Khan Market",
		Pincode:         "110003",
		HourlyRate:      300,
		ResponseTime:    "< 3 hrs",
		Available:       true,
	},
	{
		ID:              "4",
		Name:            "Ramesh Plumbing",
		Email:           "ramesh@plumbing.com",
		Phone:           "+91 76543 21098",
		Location:        "Karol Bagh, Delhi",
		ServiceIDs:      []string{"4"},
		Specialties:     []string{"Plumbing", "Pipe Repair", "Bathroom Fixing"},
		Rating:          4.6,
		ReviewCount:     67,
		ExperienceYears: 7,
		Verified:        true,
		Description:     "Expert plumber with 7+ years of experience in residential repairs",
		Address:         "D-321, Karol Bagh",
		Pincode:         "110005",
		HourlyRate:      180,
		ResponseTime:    "< 30 min",
		Available:       false,
	},
	{
		ID:           "5",
		Name:         "ElectricFix Pro",
		Location:     "Gurgaon",
		Specialties:  []string{"Electrical", "Wiring", "Switch Repair"},
		Rating:       4.5,
		ReviewCount:  45,
		HourlyRate:   220,
		ResponseTime: "< 1 hr",
		Available:    true,
	},
	{
		ID:           "6",
		Name:         "PaintMaster",
		Location:     "Noida",
		Specialties:  []string{"Painting", "Wall Painting", "Interior Design"},
		Rating:       4.7,
		ReviewCount:  78,
		HourlyRate:   160,
		ResponseTime: "< 2 hrs",
		Available:    true,
	},
	{
		ID:           "7",
		Name:         "GreenThumb Gardens",
		Location:     "Bangalore",
		Specialties:  []string{"Gardening", "Plant Care", "Lawn Maintenance"},
		Rating:       4.4,
		ReviewCount:  32,
		HourlyRate:   140,
		ResponseTime: "< 4 hrs",
		Available:    true,
	},
	{
		ID:           "8",
		Name:         "TechRepair Hub",
		Location:     "Mumbai",
		Specialties:  []string{"Appliance Repair", "Phone Repair", "TV Repair"},
		Rating:       4.6,
		ReviewCount:  94,
		HourlyRate:   250,
		ResponseTime: "< 1 hr",
		Available:    true,
	},
}

var reviews = []domain.Review{
	{
		ID:           "review1",
		BookingID:    "booking1",
		CustomerID:   "1",
		CustomerName: "Rajesh Kumar",
		ProviderID:   "2",
		ServiceID:    "1",
		Rating:       5,
		Comment:      "Excellent service! Very thorough cleaning and professional behavior.",
		CreatedAt:    ts("2024-01-20T18:30:00Z"),
	},
	{
		ID:           "review2",
		BookingID:    "booking2",
		CustomerID:   "1",
		CustomerName: "Rajesh Kumar",
		ProviderID:   "3",
		ServiceID:    "3",
		Rating:       5,
		Comment:      "Amazing facial treatment. Skin feels so fresh and clean!",
		CreatedAt:    ts("2024-01-19T16:45:00Z"),
	},
}

// demoBooking начальное бронирование; ссылки на исполнителя и услугу
// намеренно не все разрешаются по каталогу
type demoBooking struct {
	id, providerID, serviceID string
	date, time                string
	durationHours             int
	status                    domain.BookingStatus
	totalAmount               float64
	paid                      bool
	createdAt                 string
}

const (
	demoCustomerID      = "1"
	demoCustomerName    = "Rajesh Kumar"
	demoCustomerPhone   = "+91 98765 43210"
	demoCustomerAddress = "A-123, Green Park Extension, New Delhi"
)

var demoBookings = []demoBooking{
	{"booking1", "2", "1", "2024-01-22", "10:00", 4, domain.StatusConfirmed, 2499, true, "2024-01-20T10:30:00Z"},
	{"booking2", "4", "3", "2024-01-25", "15:00", 2, domain.StatusPending, 1299, false, "2024-01-21T14:15:00Z"},
	{"booking3", "3", "2", "2024-01-18", "14:00", 1, domain.StatusCompleted, 1999, true, "2024-01-16T09:15:00Z"},
	{"booking4", "5", "5", "2024-01-20", "11:00", 2, domain.StatusInProgress, 3499, true, "2024-01-18T16:20:00Z"},
	{"booking5", "6", "7", "2024-01-15", "09:00", 8, domain.StatusCompleted, 8999, true, "2024-01-13T11:45:00Z"},
	{"booking6", "1", "1", "2024-01-12", "16:00", 2, domain.StatusCancelled, 1799, true, "2024-01-10T14:30:00Z"},
	{"booking7", "7", "9", "2024-01-14", "10:00", 2, domain.StatusCompleted, 2299, true, "2024-01-12T08:15:00Z"},
	{"booking8", "8", "11", "2024-01-16", "13:00", 2, domain.StatusCancelled, 1499, true, "2024-01-14T10:20:00Z"},
}
