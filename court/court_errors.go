package court

import "errors"

var ErrCourtNotFound = errors.New("court not found")

var ErrInvalidCourt = errors.New("invalid court")
