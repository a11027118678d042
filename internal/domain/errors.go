package domain

import "errors"

var (
	// ErrInvalidDailyPrice is returned when a vehicle's daily price is not positive.
	ErrInvalidDailyPrice = errors.New("vehicle daily price must be greater than zero")

	// ErrVehicleNameRequired is returned when neither a name nor brand/model
	// resolve to a display string.
	ErrVehicleNameRequired = errors.New("vehicle needs a name or a brand and model")
)
