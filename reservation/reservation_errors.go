package reservation

import "errors"

var ErrReservationNotFound = errors.New("reservation not found")

var ErrInvalidDuration = errors.New("invalid duration")

var ErrInvalidDate = errors.New("invalid date")

var ErrInvalidStatus = errors.New("invalid reservation status")

var ErrInvalidPrice = errors.New("invalid price")

var ErrSlotUnavailable = errors.New("slot unavailable")

var ErrPastReservation = errors.New("reservation starts in the past")

var ErrInvalidTransition = errors.New("invalid reservation state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
