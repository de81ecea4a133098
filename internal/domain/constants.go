package domain

// Wizard constants
const (
	DefaultDurationHours = 2
	BookingWindowDays    = 7 // сегодня + 6 дней вперёд
)

// Business constants
const (
	CommissionRate     = 0.10 // доля платформы
	ProviderShareRate  = 0.90 // доля исполнителя после комиссии
	DefaultRecentLimit = 5
	BookingsPerPage    = 5
)

// Durable storage item names
const (
	BookingsStorageKey = "userBookings"
	SessionStorageKey  = "urbanServices_user"
)

// Time format constants
const (
	TimeFormat        = "15:04"        // HH:MM
	DateFormat        = "2006-01-02"   // YYYY-MM-DD
	DisplayDateFormat = "Jan 02, 2006" // используется в подтверждении бронирования
)

// Unknown display values for references that cannot be resolved against the catalog
const (
	UnknownProviderName = "Unknown provider"
	UnknownServiceName  = "Unknown service"
)

// TimeSlots фиксированный набор слотов начала работ, с 09:00 до 19:00 каждый час
var TimeSlots = []TimeSlot{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
	"17:00", "18:00", "19:00",
}

// DurationOptions допустимая длительность бронирования в часах
var DurationOptions = []int{1, 2, 3, 4, 6, 8}

// IsValidDuration returns true if hours is one of DurationOptions
func IsValidDuration(hours int) bool {
	for _, d := range DurationOptions {
		if d == hours {
			return true
		}
	}
	return false
}
