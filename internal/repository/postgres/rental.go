package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// RentalRepository is a PostgreSQL implementation of repository.RentalRepository.
type RentalRepository struct {
	q Querier
}

// NewRentalRepository creates a new PostgreSQL rental repository.
func NewRentalRepository(db *sql.DB) *RentalRepository {
	return &RentalRepository{q: db}
}

const rentalColumns = `id, cliente_id, veiculo_id, retirada_em, devolucao_em,
	local_retirada_id, situacao, valor_total, situacao_pagamento,
	observacoes, criado_em`

// rentalRow mirrors the rentals table shape.
type rentalRow struct {
	ID                string
	ClienteID         string
	VeiculoID         string
	RetiradaEm        time.Time
	DevolucaoEm       time.Time
	LocalRetiradaID   sql.NullString
	Situacao          string
	ValorTotal        float64
	SituacaoPagamento string
	Observacoes       string
	CriadoEm          time.Time
}

func (r rentalRow) toDomain() *domain.Rental {
	return &domain.Rental{
		ID:               r.ID,
		CustomerID:       r.ClienteID,
		VehicleID:        r.VeiculoID,
		PickupDate:       r.RetiradaEm,
		ReturnDate:       r.DevolucaoEm,
		PickupLocationID: r.LocalRetiradaID.String,
		Status:           toDomain(rentalStatusToDomain, r.Situacao),
		TotalAmount:      r.ValorTotal,
		PaymentStatus:    toDomain(rentalPaymentStatusToDomain, r.SituacaoPagamento),
		Notes:            r.Observacoes,
		CreatedAt:        r.CriadoEm,
	}
}

func rentalToRow(r *domain.Rental) rentalRow {
	return rentalRow{
		ID:                r.ID,
		ClienteID:         r.CustomerID,
		VeiculoID:         r.VehicleID,
		RetiradaEm:        r.PickupDate,
		DevolucaoEm:       r.ReturnDate,
		LocalRetiradaID:   sql.NullString{String: r.PickupLocationID, Valid: r.PickupLocationID != ""},
		Situacao:          toRemote(rentalStatusToRemote, r.Status),
		ValorTotal:        r.TotalAmount,
		SituacaoPagamento: toRemote(rentalPaymentStatusToRemote, r.PaymentStatus),
		Observacoes:       r.Notes,
		CriadoEm:          r.CreatedAt,
	}
}

func scanRental(s interface{ Scan(...any) error }) (*domain.Rental, error) {
	var row rentalRow
	err := s.Scan(
		&row.ID,
		&row.ClienteID,
		&row.VeiculoID,
		&row.RetiradaEm,
		&row.DevolucaoEm,
		&row.LocalRetiradaID,
		&row.Situacao,
		&row.ValorTotal,
		&row.SituacaoPagamento,
		&row.Observacoes,
		&row.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// GetAll retrieves every rental, newest first.
func (r *RentalRepository) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	query := fmt.Sprintf(`SELECT %s FROM rentals ORDER BY criado_em DESC`, rentalColumns)
	return r.queryRentals(ctx, query)
}

// GetByCustomer retrieves the rentals referencing a customer.
func (r *RentalRepository) GetByCustomer(ctx context.Context, customerID string) ([]*domain.Rental, error) {
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE cliente_id = $1 ORDER BY criado_em DESC`, rentalColumns)
	return r.queryRentals(ctx, query, customerID)
}

// GetByVehicle retrieves the rentals referencing a vehicle.
func (r *RentalRepository) GetByVehicle(ctx context.Context, vehicleID string) ([]*domain.Rental, error) {
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE veiculo_id = $1 ORDER BY criado_em DESC`, rentalColumns)
	return r.queryRentals(ctx, query, vehicleID)
}

func (r *RentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]*domain.Rental, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}

// GetByID retrieves a rental by ID.
func (r *RentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := fmt.Sprintf(`SELECT %s FROM rentals WHERE id = $1`, rentalColumns)

	rental, err := scanRental(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rental, nil
}

// Create persists a new rental.
func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	row := rentalToRow(rental)
	query := `
		INSERT INTO rentals (id, cliente_id, veiculo_id, retirada_em,
			devolucao_em, local_retirada_id, situacao, valor_total,
			situacao_pagamento, observacoes, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.q.ExecContext(ctx, query,
		row.ID,
		row.ClienteID,
		row.VeiculoID,
		row.RetiradaEm,
		row.DevolucaoEm,
		row.LocalRetiradaID,
		row.Situacao,
		row.ValorTotal,
		row.SituacaoPagamento,
		row.Observacoes,
		row.CriadoEm,
	)
	return mapPQError(err)
}

// Update applies a partial update and returns the updated rental.
func (r *RentalRepository) Update(ctx context.Context, id string, upd domain.RentalUpdate) (*domain.Rental, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.CustomerID != nil {
		set("cliente_id", *upd.CustomerID)
	}
	if upd.VehicleID != nil {
		set("veiculo_id", *upd.VehicleID)
	}
	if upd.PickupDate != nil {
		set("retirada_em", *upd.PickupDate)
	}
	if upd.ReturnDate != nil {
		set("devolucao_em", *upd.ReturnDate)
	}
	if upd.PickupLocationID != nil {
		set("local_retirada_id", sql.NullString{String: *upd.PickupLocationID, Valid: *upd.PickupLocationID != ""})
	}
	if upd.Status != nil {
		set("situacao", toRemote(rentalStatusToRemote, *upd.Status))
	}
	if upd.TotalAmount != nil {
		set("valor_total", *upd.TotalAmount)
	}
	if upd.PaymentStatus != nil {
		set("situacao_pagamento", toRemote(rentalPaymentStatusToRemote, *upd.PaymentStatus))
	}
	if upd.Notes != nil {
		set("observacoes", *upd.Notes)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE rentals SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapPQError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a rental by ID.
func (r *RentalRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
