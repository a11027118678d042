package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// AdminRepository is a PostgreSQL implementation of repository.AdminRepository.
type AdminRepository struct {
	q Querier
}

// NewAdminRepository creates a new PostgreSQL admin repository.
func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{q: db}
}

// GetByEmail retrieves an operator account by email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `SELECT id, nome, email, senha_hash, criado_em FROM admin_users WHERE email = $1`

	var admin domain.AdminUser
	err := r.q.QueryRowContext(ctx, query, email).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}
