package domain

import (
	"errors"
	"time"
)

// ErrInvalidTimeSlot возвращается, если время не входит в фиксированный набор слотов
var ErrInvalidTimeSlot = errors.New("domain: invalid time slot")

// TimeSlot represents a bookable start time in "HH:MM" format
type TimeSlot string

// ParseTimeSlot validates that value is one of TimeSlots
func ParseTimeSlot(value string) (TimeSlot, error) {
	for _, slot := range TimeSlots {
		if string(slot) == value {
			return slot, nil
		}
	}
	return "", ErrInvalidTimeSlot
}

// String returns the slot in "HH:MM" format
func (s TimeSlot) String() string {
	return string(s)
}

// Label returns the 12-hour label, e.g. "01:00 PM"
func (s TimeSlot) Label() string {
	t, err := time.Parse(TimeFormat, string(s))
	if err != nil {
		return string(s)
	}
	return t.Format("03:04 PM")
}

// StartOn returns the moment the slot starts on the given date
func (s TimeSlot) StartOn(date time.Time) (time.Time, error) {
	t, err := time.Parse(TimeFormat, string(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// AvailableSlot represents a time slot offered for booking on a date
type AvailableSlot struct {
	StartTime TimeSlot
	Label     string
	Available bool
}
