package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

const vehicleColumns = `id, nome, marca, modelo, ano, placa, categoria, cambio,
	combustivel, assentos, preco_diaria, caracteristicas, imagens,
	quilometragem, disponivel, estoque, criado_em`

// vehicleRow mirrors the vehicles table shape.
type vehicleRow struct {
	ID              string
	Nome            string
	Marca           string
	Modelo          string
	Ano             int
	Placa           string
	Categoria       string
	Cambio          string
	Combustivel     string
	Assentos        int
	PrecoDiaria     float64
	Caracteristicas []string
	Imagens         []string
	Quilometragem   int
	Disponivel      bool
	Estoque         int
	CriadoEm        time.Time
}

func (r vehicleRow) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:           r.ID,
		Name:         r.Nome,
		Brand:        r.Marca,
		Model:        r.Modelo,
		Year:         r.Ano,
		LicensePlate: r.Placa,
		Category:     toDomain(vehicleCategoryToDomain, r.Categoria),
		Transmission: toDomain(transmissionToDomain, r.Cambio),
		FuelType:     toDomain(fuelTypeToDomain, r.Combustivel),
		Seats:        r.Assentos,
		DailyPrice:   r.PrecoDiaria,
		Features:     r.Caracteristicas,
		Images:       r.Imagens,
		Mileage:      r.Quilometragem,
		Available:    r.Disponivel,
		Stock:        r.Estoque,
		CreatedAt:    r.CriadoEm,
	}
}

func vehicleToRow(v *domain.Vehicle) vehicleRow {
	return vehicleRow{
		ID:              v.ID,
		Nome:            v.Name,
		Marca:           v.Brand,
		Modelo:          v.Model,
		Ano:             v.Year,
		Placa:           v.LicensePlate,
		Categoria:       toRemote(vehicleCategoryToRemote, v.Category),
		Cambio:          toRemote(transmissionToRemote, v.Transmission),
		Combustivel:     toRemote(fuelTypeToRemote, v.FuelType),
		Assentos:        v.Seats,
		PrecoDiaria:     v.DailyPrice,
		Caracteristicas: v.Features,
		Imagens:         v.Images,
		Quilometragem:   v.Mileage,
		Disponivel:      v.Available,
		Estoque:         v.Stock,
		CriadoEm:        v.CreatedAt,
	}
}

func scanVehicle(s interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	var row vehicleRow
	err := s.Scan(
		&row.ID,
		&row.Nome,
		&row.Marca,
		&row.Modelo,
		&row.Ano,
		&row.Placa,
		&row.Categoria,
		&row.Cambio,
		&row.Combustivel,
		&row.Assentos,
		&row.PrecoDiaria,
		pq.Array(&row.Caracteristicas),
		pq.Array(&row.Imagens),
		&row.Quilometragem,
		&row.Disponivel,
		&row.Estoque,
		&row.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// GetAll retrieves every vehicle, newest first.
func (r *VehicleRepository) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles ORDER BY criado_em DESC`, vehicleColumns)

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, rows.Err()
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns)

	vehicle, err := scanVehicle(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	row := vehicleToRow(vehicle)
	query := `
		INSERT INTO vehicles (id, nome, marca, modelo, ano, placa, categoria,
			cambio, combustivel, assentos, preco_diaria, caracteristicas,
			imagens, quilometragem, disponivel, estoque, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.q.ExecContext(ctx, query,
		row.ID,
		row.Nome,
		row.Marca,
		row.Modelo,
		row.Ano,
		row.Placa,
		row.Categoria,
		row.Cambio,
		row.Combustivel,
		row.Assentos,
		row.PrecoDiaria,
		pq.Array(row.Caracteristicas),
		pq.Array(row.Imagens),
		row.Quilometragem,
		row.Disponivel,
		row.Estoque,
		row.CriadoEm,
	)
	return mapPQError(err)
}

// Update applies a partial update and returns the updated vehicle. Every
// settable field is translated explicitly; fields added to the domain later
// must be added here too.
func (r *VehicleRepository) Update(ctx context.Context, id string, upd domain.VehicleUpdate) (*domain.Vehicle, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("nome", *upd.Name)
	}
	if upd.Brand != nil {
		set("marca", *upd.Brand)
	}
	if upd.Model != nil {
		set("modelo", *upd.Model)
	}
	if upd.Year != nil {
		set("ano", *upd.Year)
	}
	if upd.LicensePlate != nil {
		set("placa", *upd.LicensePlate)
	}
	if upd.Category != nil {
		set("categoria", toRemote(vehicleCategoryToRemote, *upd.Category))
	}
	if upd.Transmission != nil {
		set("cambio", toRemote(transmissionToRemote, *upd.Transmission))
	}
	if upd.FuelType != nil {
		set("combustivel", toRemote(fuelTypeToRemote, *upd.FuelType))
	}
	if upd.Seats != nil {
		set("assentos", *upd.Seats)
	}
	if upd.DailyPrice != nil {
		set("preco_diaria", *upd.DailyPrice)
	}
	if upd.Features != nil {
		set("caracteristicas", pq.Array(*upd.Features))
	}
	if upd.Images != nil {
		set("imagens", pq.Array(*upd.Images))
	}
	if upd.Mileage != nil {
		set("quilometragem", *upd.Mileage)
	}
	if upd.Available != nil {
		set("disponivel", *upd.Available)
	}
	if upd.Stock != nil {
		set("estoque", *upd.Stock)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE vehicles SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapPQError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a vehicle by ID.
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// mapPQError converts driver-level constraint violations into repository errors.
func mapPQError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
