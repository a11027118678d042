package service

import "errors"

var (
	// ErrBackendRequired is returned by vehicle writes when the remote store
	// is unconfigured or unreachable. Vehicles have no writable local-only
	// path; every other entity degrades silently.
	ErrBackendRequired = errors.New("fleet changes need a configured backend")

	// ErrInvalidCustomerID is returned when a customer reference is empty.
	ErrInvalidCustomerID = errors.New("invalid customer id")

	// ErrInvalidVehicleID is returned when a vehicle reference is empty.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrInvalidRentalID is returned when a rental reference is empty.
	ErrInvalidRentalID = errors.New("invalid rental id")

	// ErrInvalidRentalPeriod is returned when the return date does not come
	// after the pickup date.
	ErrInvalidRentalPeriod = errors.New("return date must be after pickup date")

	// ErrVehicleUnavailable is returned when the requested vehicle is not
	// available for the requested period.
	ErrVehicleUnavailable = errors.New("vehicle is not available for the requested period")

	// ErrInvalidStatusTransition is returned for a booking status change the
	// lifecycle does not allow.
	ErrInvalidStatusTransition = errors.New("invalid rental status transition")

	// ErrInvalidAmount is returned when a ledger amount is not positive.
	ErrInvalidAmount = errors.New("payment amount must be greater than zero")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
