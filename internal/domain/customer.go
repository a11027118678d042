package domain

import "time"

// CustomerStatus represents the lifecycle status of a customer.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerBlocked  CustomerStatus = "blocked"
)

// Customer represents a registered renter.
type Customer struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	CPF           string
	DriverLicense string
	Address       string
	RegisteredAt  time.Time

	// TotalRentals is a cached counter bumped on rental creation. The
	// authoritative value is the count of rentals referencing this
	// customer; this field can drift and must not be treated as truth.
	TotalRentals int

	Status CustomerStatus
}

// CustomerUpdate is a typed partial update. Nil fields are left untouched.
type CustomerUpdate struct {
	Name          *string
	Email         *string
	Phone         *string
	CPF           *string
	DriverLicense *string
	Address       *string
	TotalRentals  *int
	Status        *CustomerStatus
}
