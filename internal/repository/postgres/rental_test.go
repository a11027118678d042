package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

func newRentalMock(t *testing.T) (*RentalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRentalRepository(db), mock
}

var rentalMockColumns = []string{
	"id", "cliente_id", "veiculo_id", "retirada_em", "devolucao_em",
	"local_retirada_id", "situacao", "valor_total", "situacao_pagamento",
	"observacoes", "criado_em",
}

func TestRentalGetByIDTranslatesRemoteTokens(t *testing.T) {
	repo, mock := newRentalMock(t)
	pickup := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(rentalMockColumns).AddRow(
			"r1", "c1", "v1", pickup, ret, "loc1", "ativo", 300.0, "pago", "", pickup,
		))

	rental, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, "c1", rental.CustomerID)
	assert.Equal(t, "v1", rental.VehicleID)
	assert.Equal(t, "loc1", rental.PickupLocationID)
	assert.Equal(t, domain.RentalActive, rental.Status)
	assert.Equal(t, domain.RentalPaymentPaid, rental.PaymentStatus)
	assert.Equal(t, 300.0, rental.TotalAmount)
}

func TestRentalGetByIDNullPickupLocation(t *testing.T) {
	repo, mock := newRentalMock(t)
	pickup := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
		WithArgs("r2").
		WillReturnRows(sqlmock.NewRows(rentalMockColumns).AddRow(
			"r2", "c1", "v1", pickup, ret, nil, "pendente", 300.0, "atrasado", "", pickup,
		))

	rental, err := repo.GetByID(context.Background(), "r2")
	require.NoError(t, err)

	assert.Empty(t, rental.PickupLocationID)
	assert.Equal(t, domain.RentalPending, rental.Status)
	assert.Equal(t, domain.RentalPaymentOverdue, rental.PaymentStatus)
}

func TestRentalCreateWritesRemoteTokens(t *testing.T) {
	repo, mock := newRentalMock(t)
	pickup := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	// A booking without a pickup location persists a NULL local_retirada_id.
	mock.ExpectExec(`INSERT INTO rentals`).
		WithArgs("r1", "c1", "v1", pickup, ret, nil, "cancelado", 300.0, "pendente", "", pickup).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Rental{
		ID:            "r1",
		CustomerID:    "c1",
		VehicleID:     "v1",
		PickupDate:    pickup,
		ReturnDate:    ret,
		Status:        domain.RentalCancelled,
		TotalAmount:   300,
		PaymentStatus: domain.RentalPaymentPending,
		CreatedAt:     pickup,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalGetByCustomerFilters(t *testing.T) {
	repo, mock := newRentalMock(t)
	pickup := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE cliente_id = \$1`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(rentalMockColumns).AddRow(
			"r1", "c1", "v1", pickup, ret, nil, "concluido", 300.0, "pago", "", pickup,
		))

	rentals, err := repo.GetByCustomer(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, domain.RentalCompleted, rentals[0].Status)
}

func TestRentalUpdateMissingRow(t *testing.T) {
	repo, mock := newRentalMock(t)

	amount := 450.0
	mock.ExpectExec(`UPDATE rentals SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), "missing", domain.RentalUpdate{TotalAmount: &amount})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
