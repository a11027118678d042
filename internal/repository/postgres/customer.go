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

// CustomerRepository is a PostgreSQL implementation of repository.CustomerRepository.
type CustomerRepository struct {
	q Querier
}

// NewCustomerRepository creates a new PostgreSQL customer repository.
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{q: db}
}

const customerColumns = `id, nome, email, telefone, cpf, cnh, endereco,
	cadastrado_em, total_locacoes, situacao`

// customerRow mirrors the customers table shape.
type customerRow struct {
	ID            string
	Nome          string
	Email         string
	Telefone      string
	CPF           string
	CNH           string
	Endereco      string
	CadastradoEm  time.Time
	TotalLocacoes int
	Situacao      string
}

func (r customerRow) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:            r.ID,
		Name:          r.Nome,
		Email:         r.Email,
		Phone:         r.Telefone,
		CPF:           r.CPF,
		DriverLicense: r.CNH,
		Address:       r.Endereco,
		RegisteredAt:  r.CadastradoEm,
		TotalRentals:  r.TotalLocacoes,
		Status:        toDomain(customerStatusToDomain, r.Situacao),
	}
}

func customerToRow(c *domain.Customer) customerRow {
	return customerRow{
		ID:            c.ID,
		Nome:          c.Name,
		Email:         c.Email,
		Telefone:      c.Phone,
		CPF:           c.CPF,
		CNH:           c.DriverLicense,
		Endereco:      c.Address,
		CadastradoEm:  c.RegisteredAt,
		TotalLocacoes: c.TotalRentals,
		Situacao:      toRemote(customerStatusToRemote, c.Status),
	}
}

func scanCustomer(s interface{ Scan(...any) error }) (*domain.Customer, error) {
	var row customerRow
	err := s.Scan(
		&row.ID,
		&row.Nome,
		&row.Email,
		&row.Telefone,
		&row.CPF,
		&row.CNH,
		&row.Endereco,
		&row.CadastradoEm,
		&row.TotalLocacoes,
		&row.Situacao,
	)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// GetAll retrieves every customer, newest first.
func (r *CustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers ORDER BY cadastrado_em DESC`, customerColumns)

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)

	customer, err := scanCustomer(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

// FindByEmail retrieves a customer by email. Returns nil, nil when absent.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE email = $1`, customerColumns)

	customer, err := scanCustomer(r.q.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

// FindByCPF retrieves a customer by government ID. Returns nil, nil when absent.
func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE cpf = $1`, customerColumns)

	customer, err := scanCustomer(r.q.QueryRowContext(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

// Create persists a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	row := customerToRow(customer)
	query := `
		INSERT INTO customers (id, nome, email, telefone, cpf, cnh, endereco,
			cadastrado_em, total_locacoes, situacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		row.ID,
		row.Nome,
		row.Email,
		row.Telefone,
		row.CPF,
		row.CNH,
		row.Endereco,
		row.CadastradoEm,
		row.TotalLocacoes,
		row.Situacao,
	)
	return mapPQError(err)
}

// Update applies a partial update and returns the updated customer.
func (r *CustomerRepository) Update(ctx context.Context, id string, upd domain.CustomerUpdate) (*domain.Customer, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("nome", *upd.Name)
	}
	if upd.Email != nil {
		set("email", *upd.Email)
	}
	if upd.Phone != nil {
		set("telefone", *upd.Phone)
	}
	if upd.CPF != nil {
		set("cpf", *upd.CPF)
	}
	if upd.DriverLicense != nil {
		set("cnh", *upd.DriverLicense)
	}
	if upd.Address != nil {
		set("endereco", *upd.Address)
	}
	if upd.TotalRentals != nil {
		set("total_locacoes", *upd.TotalRentals)
	}
	if upd.Status != nil {
		set("situacao", toRemote(customerStatusToRemote, *upd.Status))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE customers SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapPQError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a customer by ID. Rentals referencing the customer are left
// in place; the reference dangles and name resolution renders a placeholder.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// IncrementTotalRentals bumps the cached rental counter by delta.
func (r *CustomerRepository) IncrementTotalRentals(ctx context.Context, id string, delta int) error {
	query := `UPDATE customers SET total_locacoes = total_locacoes + $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
