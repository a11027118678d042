package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// LocationRepository is a PostgreSQL implementation of repository.LocationRepository.
type LocationRepository struct {
	q Querier
}

// NewLocationRepository creates a new PostgreSQL pickup-location repository.
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{q: db}
}

const locationColumns = `id, nome, endereco, cidade, estado, ativo, ordem, observacoes`

// locationRow mirrors the pickup_locations table shape.
type locationRow struct {
	ID          string
	Nome        string
	Endereco    string
	Cidade      string
	Estado      string
	Ativo       bool
	Ordem       int
	Observacoes string
}

func (r locationRow) toDomain() *domain.PickupLocation {
	return &domain.PickupLocation{
		ID:           r.ID,
		Name:         r.Nome,
		Address:      r.Endereco,
		City:         r.Cidade,
		State:        r.Estado,
		Active:       r.Ativo,
		DisplayOrder: r.Ordem,
		Notes:        r.Observacoes,
	}
}

func locationToRow(l *domain.PickupLocation) locationRow {
	return locationRow{
		ID:          l.ID,
		Nome:        l.Name,
		Endereco:    l.Address,
		Cidade:      l.City,
		Estado:      l.State,
		Ativo:       l.Active,
		Ordem:       l.DisplayOrder,
		Observacoes: l.Notes,
	}
}

func scanLocation(s interface{ Scan(...any) error }) (*domain.PickupLocation, error) {
	var row locationRow
	err := s.Scan(
		&row.ID,
		&row.Nome,
		&row.Endereco,
		&row.Cidade,
		&row.Estado,
		&row.Ativo,
		&row.Ordem,
		&row.Observacoes,
	)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// GetAll retrieves every pickup location ordered by display order.
func (r *LocationRepository) GetAll(ctx context.Context) ([]*domain.PickupLocation, error) {
	query := fmt.Sprintf(`SELECT %s FROM pickup_locations ORDER BY ordem ASC, nome ASC`, locationColumns)

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*domain.PickupLocation
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, rows.Err()
}

// GetByID retrieves a pickup location by ID.
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*domain.PickupLocation, error) {
	query := fmt.Sprintf(`SELECT %s FROM pickup_locations WHERE id = $1`, locationColumns)

	location, err := scanLocation(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return location, nil
}

// Create persists a new pickup location.
func (r *LocationRepository) Create(ctx context.Context, location *domain.PickupLocation) error {
	row := locationToRow(location)
	query := `
		INSERT INTO pickup_locations (id, nome, endereco, cidade, estado, ativo, ordem, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		row.ID,
		row.Nome,
		row.Endereco,
		row.Cidade,
		row.Estado,
		row.Ativo,
		row.Ordem,
		row.Observacoes,
	)
	return mapPQError(err)
}

// Update applies a partial update and returns the updated pickup location.
func (r *LocationRepository) Update(ctx context.Context, id string, upd domain.PickupLocationUpdate) (*domain.PickupLocation, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("nome", *upd.Name)
	}
	if upd.Address != nil {
		set("endereco", *upd.Address)
	}
	if upd.City != nil {
		set("cidade", *upd.City)
	}
	if upd.State != nil {
		set("estado", *upd.State)
	}
	if upd.Active != nil {
		set("ativo", *upd.Active)
	}
	if upd.DisplayOrder != nil {
		set("ordem", *upd.DisplayOrder)
	}
	if upd.Notes != nil {
		set("observacoes", *upd.Notes)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE pickup_locations SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapPQError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a pickup location by ID.
func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM pickup_locations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
