package repository

import (
	"context"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// PaymentRepository defines the remote persistence operations for ledger entries.
type PaymentRepository interface {
	GetAll(ctx context.Context) ([]*domain.Payment, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetByRental retrieves the ledger entries tied to a rental.
	GetByRental(ctx context.Context, rentalID string) ([]*domain.Payment, error)

	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, id string, upd domain.PaymentUpdate) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}
