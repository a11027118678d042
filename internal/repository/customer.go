package repository

import (
	"context"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// CustomerRepository defines the remote persistence operations for customers.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)

	// FindByEmail retrieves a customer by email. Returns nil, nil when absent.
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// FindByCPF retrieves a customer by government ID. Returns nil, nil when absent.
	FindByCPF(ctx context.Context, cpf string) (*domain.Customer, error)

	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, id string, upd domain.CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error

	// IncrementTotalRentals bumps the cached rental counter by delta.
	IncrementTotalRentals(ctx context.Context, id string, delta int) error
}
