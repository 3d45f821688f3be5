package errors

import "errors"

var (
	// ErrInvalidInput user supplied a city, month or day outside the accepted vocabulary
	ErrInvalidInput = errors.New("invalid input")
	// ErrNumericMonth the month was given as a number instead of a name
	ErrNumericMonth = errors.New("month must be given by name, not number")
	// ErrDataUnavailable the dataset backing a city is missing or unreadable
	ErrDataUnavailable = errors.New("data unavailable")
	ErrMissingColumn   = errors.New("missing required column")
	ErrInvalidTripData = errors.New("invalid trip data")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidYear     = errors.New("invalid birth year")
	ErrInvalidStation  = errors.New("invalid station data")
)
