package repository

import (
	"context"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// RentalRepository defines the remote persistence operations for rentals.
type RentalRepository interface {
	GetAll(ctx context.Context) ([]*domain.Rental, error)
	GetByID(ctx context.Context, id string) (*domain.Rental, error)

	// GetByCustomer retrieves the rentals referencing a customer.
	GetByCustomer(ctx context.Context, customerID string) ([]*domain.Rental, error)

	// GetByVehicle retrieves the rentals referencing a vehicle.
	GetByVehicle(ctx context.Context, vehicleID string) ([]*domain.Rental, error)

	Create(ctx context.Context, rental *domain.Rental) error
	Update(ctx context.Context, id string, upd domain.RentalUpdate) (*domain.Rental, error)
	Delete(ctx context.Context, id string) error
}
