package reservation

import (
	"fmt"
	"strings"
	"time"
)

var startTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.DateTime,
}

// ParseStartTime reads a naive local timestamp. Inputs carrying a zone
// offset are rejected.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q is not a valid start time", ErrInvalidDate, s)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.UTC)

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}

	return t, nil
}

// LocalNow reads the host clock and re-expresses its wall time as a naive
// timestamp comparable with stored reservations.
func LocalNow() time.Time {
	n := time.Now()
	return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), 0, time.UTC)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
