package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/fallback"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// PaymentService handles the financial ledger with the resilient protocol.
type PaymentService struct {
	remote repository.PaymentRepository
	ready  Readiness
	local  fallback.List[*domain.Payment]
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(remote repository.PaymentRepository, ready Readiness, local fallback.List[*domain.Payment]) *PaymentService {
	return &PaymentService{remote: remote, ready: ready, local: local}
}

func (s *PaymentService) remoteReady(ctx context.Context) bool {
	return s.remote != nil && s.ready != nil && s.ready.Ready(ctx)
}

// GetAll retrieves every ledger entry.
func (s *PaymentService) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	return s.getAll(ctx).value, nil
}

func (s *PaymentService) getAll(ctx context.Context) result[[]*domain.Payment] {
	return readAll(ctx, "payments", s.remoteReady(ctx), func(ctx context.Context) ([]*domain.Payment, error) {
		return s.remote.GetAll(ctx)
	}, s.local)
}

// GetByID retrieves a ledger entry. Absence is reported as nil, nil.
func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if s.remoteReady(ctx) {
		payment, err := s.remote.GetByID(ctx, id)
		if err == nil {
			return payment, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "payments", "error", err)
	}

	payment, ok, err := findLocal(ctx, s.local, func(p *domain.Payment) bool { return p.ID == id })
	if err != nil || !ok {
		return nil, nil
	}
	return payment, nil
}

// GetByRental retrieves the ledger entries tied to a rental.
func (s *PaymentService) GetByRental(ctx context.Context, rentalID string) ([]*domain.Payment, error) {
	if rentalID == "" {
		return nil, ErrInvalidRentalID
	}

	if s.remoteReady(ctx) {
		payments, err := s.remote.GetByRental(ctx, rentalID)
		if err == nil {
			return payments, nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "payments", "error", err)
	}

	all, err := s.local.GetAll(ctx)
	if err != nil {
		zap.S().Warnw("fallback read failed, serving empty collection", "entity", "payments", "error", err)
		return nil, nil
	}
	var payments []*domain.Payment
	for _, p := range all {
		if p.RentalID == rentalID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

// Create records a ledger entry. A remote failure degrades to a
// fallback-only record with a locally minted ID.
func (s *PaymentService) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if payment.Method == "" {
		payment.Method = domain.MethodCash
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentPending
	}
	if payment.Origin == "" {
		payment.Origin = domain.OriginManual
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}
	payment.ID = uuid.New().String()
	payment.CreatedAt = time.Now()

	if s.remoteReady(ctx) {
		err := s.remote.Create(ctx, payment)
		if err == nil {
			mirrorUpsert(ctx, "payments", s.local, payment)
			return payment, nil
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "payments", "error", err)
	}

	payment.ID = fallback.NewLocalID()
	if err := s.local.Upsert(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// applyPaymentUpdate applies a partial update to a ledger entry value.
func applyPaymentUpdate(p *domain.Payment, upd domain.PaymentUpdate) {
	if upd.RentalID != nil {
		p.RentalID = *upd.RentalID
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.Amount != nil {
		p.Amount = *upd.Amount
	}
	if upd.Method != nil {
		p.Method = *upd.Method
	}
	if upd.PaidAt != nil {
		p.PaidAt = *upd.PaidAt
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Notes != nil {
		p.Notes = *upd.Notes
	}
	if upd.Origin != nil {
		p.Origin = *upd.Origin
	}
}

// Update applies a partial update, degrading to the fallback store on a
// remote failure.
func (s *PaymentService) Update(ctx context.Context, id string, upd domain.PaymentUpdate) (*domain.Payment, error) {
	if upd.Amount != nil && *upd.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if s.remoteReady(ctx) {
		payment, err := s.remote.Update(ctx, id, upd)
		if err == nil {
			mirrorUpsert(ctx, "payments", s.local, payment)
			return payment, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "payments", "error", err)
	}

	payment, ok, err := findLocal(ctx, s.local, func(p *domain.Payment) bool { return p.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	applyPaymentUpdate(payment, upd)
	if err := s.local.Upsert(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes a ledger entry.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if s.remoteReady(ctx) {
		err := s.remote.Delete(ctx, id)
		if err == nil {
			mirrorRemove(ctx, "payments", s.local, id)
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "payments", "error", err)
	}

	return s.local.Remove(ctx, id)
}
