package domain

import (
	"math"
	"strings"
	"time"
)

// RentalStatus represents the booking lifecycle of a rental.
// Transitions: pending -> active -> completed, or pending/active -> cancelled.
type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

// RentalPaymentStatus represents the payment side of a rental, independent
// of the booking lifecycle.
// Transitions: pending -> paid, pending -> overdue, overdue -> paid.
type RentalPaymentStatus string

const (
	RentalPaymentPending RentalPaymentStatus = "pending"
	RentalPaymentPaid    RentalPaymentStatus = "paid"
	RentalPaymentOverdue RentalPaymentStatus = "overdue"
)

// Rental represents a booking of one vehicle by one customer.
type Rental struct {
	ID               string
	CustomerID       string
	VehicleID        string
	PickupDate       time.Time
	ReturnDate       time.Time
	PickupLocationID string
	Status           RentalStatus
	TotalAmount      float64
	PaymentStatus    RentalPaymentStatus
	Notes            string
	CreatedAt        time.Time
}

// RentalUpdate is a typed partial update. Nil fields are left untouched.
type RentalUpdate struct {
	CustomerID       *string
	VehicleID        *string
	PickupDate       *time.Time
	ReturnDate       *time.Time
	PickupLocationID *string
	Status           *RentalStatus
	TotalAmount      *float64
	PaymentStatus    *RentalPaymentStatus
	Notes            *string
}

// Days returns the billed rental length in days, rounding partial days up
// and never billing less than one day.
func (r *Rental) Days() int {
	hours := r.ReturnDate.Sub(r.PickupDate).Hours()
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// Code returns the short human-facing booking code derived from the rental
// ID: a fixed prefix plus the last 8 characters of the ID, upper-cased.
func (r *Rental) Code() string {
	id := r.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return "LOC-" + strings.ToUpper(id)
}

// Overlaps reports whether the rental occupies any part of the given period.
func (r *Rental) Overlaps(from, to time.Time) bool {
	return r.PickupDate.Before(to) && from.Before(r.ReturnDate)
}
