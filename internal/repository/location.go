package repository

import (
	"context"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// LocationRepository defines the remote persistence operations for pickup locations.
type LocationRepository interface {
	// GetAll retrieves every pickup location ordered by display order.
	GetAll(ctx context.Context) ([]*domain.PickupLocation, error)
	GetByID(ctx context.Context, id string) (*domain.PickupLocation, error)
	Create(ctx context.Context, location *domain.PickupLocation) error
	Update(ctx context.Context, id string, upd domain.PickupLocationUpdate) (*domain.PickupLocation, error)
	Delete(ctx context.Context, id string) error
}
