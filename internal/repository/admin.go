package repository

import (
	"context"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// AdminRepository defines lookups against the back-office operator accounts.
type AdminRepository interface {
	// GetByEmail retrieves an operator account by email.
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}
