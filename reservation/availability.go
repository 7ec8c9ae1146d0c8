package reservation

import (
	"fmt"
	"time"
)

const (
	MinDuration     = 30
	MaxDuration     = 180
	DefaultDuration = 60
)

// Bookable window, in minutes since midnight: 08:00 inclusive to 24:00
// exclusive.
const (
	openingMinute = 8 * 60
	closingMinute = 24 * 60
)

type Slot struct {
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

type Slots struct {
	Available []Slot `json:"available"`
	Occupied  []Slot `json:"occupied"`
}

func ValidateDuration(duration int) error {
	if duration < MinDuration || duration > MaxDuration {
		return fmt.Errorf("%w: must be between %d and %d minutes, got %d", ErrInvalidDuration, MinDuration, MaxDuration, duration)
	}
	return nil
}

// IsAvailable reports whether [start, start+duration) is free of every
// existing reservation. Intervals are half-open, so back-to-back
// reservations do not conflict. existing is expected to hold only booked
// reservations of the same court and date; duration must be positive.
func IsAvailable(existing []Reservation, start time.Time, duration int) bool {
	end := start.Add(time.Duration(duration) * time.Minute)

	for _, r := range existing {
		if start.Before(r.EndTime()) && end.After(r.StartTime) {
			return false
		}
	}

	return true
}

// withinOpeningHours reports whether [start, start+duration) fits in the
// bookable window of its own day.
func withinOpeningHours(start time.Time, duration int) bool {
	minute := start.Hour()*60 + start.Minute()
	return minute >= openingMinute && minute+duration <= closingMinute
}

// GenerateSlots walks the bookable window of date in steps of duration
// and partitions the resulting slots by availability against booked.
func GenerateSlots(date time.Time, duration int, booked []Reservation) Slots {
	slots := Slots{Available: []Slot{}, Occupied: []Slot{}}

	if duration <= 0 {
		return slots
	}

	day := startOfDay(date)

	for minute := openingMinute; minute+duration <= closingMinute; minute += duration {
		slot := Slot{
			Label:     clockLabel(minute) + "-" + clockLabel(minute+duration),
			StartTime: clockLabel(minute),
		}

		start := day.Add(time.Duration(minute) * time.Minute)
		slot.Available = IsAvailable(booked, start, duration)

		if slot.Available {
			slots.Available = append(slots.Available, slot)
		} else {
			slots.Occupied = append(slots.Occupied, slot)
		}
	}

	return slots
}

// clockLabel renders minutes since midnight as HH:MM; midnight at the end
// of the window is 00:00, not 24:00.
func clockLabel(minute int) string {
	return fmt.Sprintf("%02d:%02d", (minute/60)%24, minute%60)
}
