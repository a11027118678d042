package repository

import (
	"context"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// VehicleRepository defines the remote persistence operations for vehicles.
type VehicleRepository interface {
	// GetAll retrieves every vehicle, newest first.
	GetAll(ctx context.Context) ([]*domain.Vehicle, error)

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)

	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// Update applies a partial update and returns the updated vehicle.
	Update(ctx context.Context, id string, upd domain.VehicleUpdate) (*domain.Vehicle, error)

	// Delete removes a vehicle by ID.
	Delete(ctx context.Context, id string) error
}
