package reservation_test

import (
	"testing"
	"time"

	"github.com/hanksha/padel-booking-backend/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func booked(start time.Time, duration int) reservation.Reservation {
	return reservation.Reservation{CourtID: 1, StartTime: start, Duration: duration, Status: reservation.StatusBooked}
}

func labels(slots []reservation.Slot) []string {
	out := []string{}
	for _, slot := range slots {
		out = append(out, slot.Label)
	}
	return out
}

func TestIsAvailable(t *testing.T) {
	existing := []reservation.Reservation{booked(at(9, 0), 90)} // 09:00-10:30

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"starts exactly at existing end", at(10, 30), 60, true},
		{"ends exactly at existing start", at(8, 0), 60, true},
		{"starts inside existing", at(10, 0), 60, false},
		{"ends inside existing", at(8, 30), 60, false},
		{"inside existing", at(9, 15), 30, false},
		{"same interval", at(9, 0), 90, false},
		{"well before", at(6, 0), 60, true},
		{"well after", at(18, 0), 90, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.IsAvailable(existing, tt.start, tt.duration))
		})
	}
}

func TestIsAvailable_Containment(t *testing.T) {
	existing := []reservation.Reservation{booked(at(9, 0), 60)}

	require.False(t, reservation.IsAvailable(existing, at(8, 30), 120))
}

func TestIsAvailable_Empty(t *testing.T) {
	for _, duration := range []int{30, 60, 90, 120, 180} {
		require.True(t, reservation.IsAvailable(nil, at(8, 0), duration))
		require.True(t, reservation.IsAvailable([]reservation.Reservation{}, at(22, 0), duration))
	}
}

func TestIsAvailable_Deterministic(t *testing.T) {
	existing := []reservation.Reservation{booked(at(9, 0), 60), booked(at(12, 0), 90)}

	for minute := 8 * 60; minute < 24*60; minute += 15 {
		start := at(0, 0).Add(time.Duration(minute) * time.Minute)
		first := reservation.IsAvailable(existing, start, 60)
		second := reservation.IsAvailable(existing, start, 60)
		require.Equal(t, first, second, "start %v", start)
	}
}

func TestIsAvailable_Symmetric(t *testing.T) {
	durations := []int{30, 60, 90, 120}

	for a := 8 * 60; a < 12*60; a += 15 {
		for b := 8 * 60; b < 12*60; b += 15 {
			for _, da := range durations {
				for _, db := range durations {
					startA := at(0, 0).Add(time.Duration(a) * time.Minute)
					startB := at(0, 0).Add(time.Duration(b) * time.Minute)

					ab := reservation.IsAvailable([]reservation.Reservation{booked(startB, db)}, startA, da)
					ba := reservation.IsAvailable([]reservation.Reservation{booked(startA, da)}, startB, db)

					require.Equal(t, ab, ba, "A=%v+%d B=%v+%d", startA, da, startB, db)
				}
			}
		}
	}
}

func TestGenerateSlots_Hourly(t *testing.T) {
	slots := reservation.GenerateSlots(at(0, 0), 60, nil)

	require.Len(t, slots.Available, 16)
	require.Empty(t, slots.Occupied)
	require.Equal(t, "08:00-09:00", slots.Available[0].Label)
	require.Equal(t, "08:00", slots.Available[0].StartTime)
	require.True(t, slots.Available[0].Available)
	require.Equal(t, "23:00-00:00", slots.Available[15].Label)
	require.Equal(t, "23:00", slots.Available[15].StartTime)
}

func TestGenerateSlots_NinetyMinutes(t *testing.T) {
	slots := reservation.GenerateSlots(at(0, 0), 90, nil)

	require.Equal(t, []string{
		"08:00-09:30",
		"09:30-11:00",
		"11:00-12:30",
		"12:30-14:00",
		"14:00-15:30",
		"15:30-17:00",
		"17:00-18:30",
		"18:30-20:00",
		"20:00-21:30",
		"21:30-23:00",
	}, labels(slots.Available))
}

func TestGenerateSlots_NeverExceedsWindow(t *testing.T) {
	for duration := reservation.MinDuration; duration <= reservation.MaxDuration; duration += 15 {
		slots := reservation.GenerateSlots(at(0, 0), duration, nil)

		require.NotEmpty(t, slots.Available)
		require.Equal(t, (24*60-8*60)/duration, len(slots.Available), "duration %d", duration)
	}
}

func TestGenerateSlots_Partition(t *testing.T) {
	existing := []reservation.Reservation{booked(at(10, 0), 90)} // 10:00-11:30

	slots := reservation.GenerateSlots(at(0, 0), 60, existing)

	require.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, labels(slots.Occupied))
	require.Len(t, slots.Available, 14)
	require.Contains(t, labels(slots.Available), "08:00-09:00")
	require.Contains(t, labels(slots.Available), "12:00-13:00")

	for _, slot := range slots.Occupied {
		require.False(t, slot.Available)
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	slots := reservation.GenerateSlots(at(0, 0), 0, nil)

	require.Empty(t, slots.Available)
	require.Empty(t, slots.Occupied)
}

func TestValidateDuration(t *testing.T) {
	for _, valid := range []int{30, 60, 90, 180} {
		require.NoError(t, reservation.ValidateDuration(valid))
	}

	for _, invalid := range []int{-60, 0, 29, 181, 240} {
		require.ErrorIs(t, reservation.ValidateDuration(invalid), reservation.ErrInvalidDuration)
	}
}

func TestParseStartTime(t *testing.T) {
	for _, input := range []string{"2025-06-01T10:00", "2025-06-01T10:00:00", "2025-06-01 10:00", "2025-06-01 10:00:00"} {
		got, err := reservation.ParseStartTime(input)
		require.NoError(t, err, input)
		require.Equal(t, at(10, 0), got)
	}

	for _, input := range []string{"", "10:00", "2025-06-01", "2025-06-01T10:00:00+02:00", "01/06/2025 10:00"} {
		_, err := reservation.ParseStartTime(input)
		require.ErrorIs(t, err, reservation.ErrInvalidDate, input)
	}
}

func TestParseDate(t *testing.T) {
	got, err := reservation.ParseDate("2025-06-01")
	require.NoError(t, err)
	require.Equal(t, at(0, 0), got)

	_, err = reservation.ParseDate("2025-13-01")
	require.ErrorIs(t, err, reservation.ErrInvalidDate)
}

func TestParseStatus(t *testing.T) {
	status, err := reservation.ParseStatus("completed")
	require.NoError(t, err)
	require.Equal(t, reservation.StatusCompleted, status)

	_, err = reservation.ParseStatus("pending")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
