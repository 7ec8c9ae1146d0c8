package court

import "time"

type Court struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Maintenance bool      `json:"maintenance"`
	TimeSlots   []string  `json:"timeSlots"` // informational labels shown by the client
	CreatedAt   time.Time `json:"createdAt"`
}

// Bookable reports whether regular users may reserve the court.
func (c Court) Bookable() bool {
	return !c.Maintenance
}
