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

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

const paymentColumns = `id, locacao_id, tipo, valor, forma_pagamento, pago_em,
	situacao, observacoes, origem, criado_em`

// paymentRow mirrors the rental_payments table shape. LocacaoID is NULL for
// manual ledger entries not tied to a booking.
type paymentRow struct {
	ID             string
	LocacaoID      sql.NullString
	Tipo           string
	Valor          float64
	FormaPagamento string
	PagoEm         time.Time
	Situacao       string
	Observacoes    string
	Origem         string
	CriadoEm       time.Time
}

func (r paymentRow) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:        r.ID,
		RentalID:  r.LocacaoID.String,
		Type:      toDomain(paymentTypeToDomain, r.Tipo),
		Amount:    r.Valor,
		Method:    toDomain(paymentMethodToDomain, r.FormaPagamento),
		PaidAt:    r.PagoEm,
		Status:    toDomain(paymentStatusToDomain, r.Situacao),
		Notes:     r.Observacoes,
		Origin:    toDomain(paymentOriginToDomain, r.Origem),
		CreatedAt: r.CriadoEm,
	}
}

func paymentToRow(p *domain.Payment) paymentRow {
	return paymentRow{
		ID:             p.ID,
		LocacaoID:      sql.NullString{String: p.RentalID, Valid: p.RentalID != ""},
		Tipo:           toRemote(paymentTypeToRemote, p.Type),
		Valor:          p.Amount,
		FormaPagamento: toRemote(paymentMethodToRemote, p.Method),
		PagoEm:         p.PaidAt,
		Situacao:       toRemote(paymentStatusToRemote, p.Status),
		Observacoes:    p.Notes,
		Origem:         toRemote(paymentOriginToRemote, p.Origin),
		CriadoEm:       p.CreatedAt,
	}
}

func scanPayment(s interface{ Scan(...any) error }) (*domain.Payment, error) {
	var row paymentRow
	err := s.Scan(
		&row.ID,
		&row.LocacaoID,
		&row.Tipo,
		&row.Valor,
		&row.FormaPagamento,
		&row.PagoEm,
		&row.Situacao,
		&row.Observacoes,
		&row.Origem,
		&row.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// GetAll retrieves every ledger entry, newest first.
func (r *PaymentRepository) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM rental_payments ORDER BY criado_em DESC`, paymentColumns)
	return r.queryPayments(ctx, query)
}

// GetByRental retrieves the ledger entries tied to a rental.
func (r *PaymentRepository) GetByRental(ctx context.Context, rentalID string) ([]*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM rental_payments WHERE locacao_id = $1 ORDER BY criado_em DESC`, paymentColumns)
	return r.queryPayments(ctx, query, rentalID)
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]*domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

// GetByID retrieves a ledger entry by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM rental_payments WHERE id = $1`, paymentColumns)

	payment, err := scanPayment(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}

// Create persists a new ledger entry.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	row := paymentToRow(payment)
	query := `
		INSERT INTO rental_payments (id, locacao_id, tipo, valor,
			forma_pagamento, pago_em, situacao, observacoes, origem, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		row.ID,
		row.LocacaoID,
		row.Tipo,
		row.Valor,
		row.FormaPagamento,
		row.PagoEm,
		row.Situacao,
		row.Observacoes,
		row.Origem,
		row.CriadoEm,
	)
	return mapPQError(err)
}

// Update applies a partial update and returns the updated ledger entry.
func (r *PaymentRepository) Update(ctx context.Context, id string, upd domain.PaymentUpdate) (*domain.Payment, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.RentalID != nil {
		set("locacao_id", sql.NullString{String: *upd.RentalID, Valid: *upd.RentalID != ""})
	}
	if upd.Type != nil {
		set("tipo", toRemote(paymentTypeToRemote, *upd.Type))
	}
	if upd.Amount != nil {
		set("valor", *upd.Amount)
	}
	if upd.Method != nil {
		set("forma_pagamento", toRemote(paymentMethodToRemote, *upd.Method))
	}
	if upd.PaidAt != nil {
		set("pago_em", *upd.PaidAt)
	}
	if upd.Status != nil {
		set("situacao", toRemote(paymentStatusToRemote, *upd.Status))
	}
	if upd.Notes != nil {
		set("observacoes", *upd.Notes)
	}
	if upd.Origin != nil {
		set("origem", toRemote(paymentOriginToRemote, *upd.Origin))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE rental_payments SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapPQError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a ledger entry by ID.
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM rental_payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
