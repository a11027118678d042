package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/fallback"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// CustomerService handles customer records with the resilient protocol:
// remote first, silent degrade to the fallback store on any failure.
type CustomerService struct {
	remote repository.CustomerRepository
	ready  Readiness
	local  fallback.List[*domain.Customer]
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(remote repository.CustomerRepository, ready Readiness, local fallback.List[*domain.Customer]) *CustomerService {
	return &CustomerService{remote: remote, ready: ready, local: local}
}

func (s *CustomerService) remoteReady(ctx context.Context) bool {
	return s.remote != nil && s.ready != nil && s.ready.Ready(ctx)
}

// GetAll retrieves every customer.
func (s *CustomerService) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	return s.getAll(ctx).value, nil
}

func (s *CustomerService) getAll(ctx context.Context) result[[]*domain.Customer] {
	return readAll(ctx, "customers", s.remoteReady(ctx), func(ctx context.Context) ([]*domain.Customer, error) {
		return s.remote.GetAll(ctx)
	}, s.local)
}

// GetByID retrieves a customer. Absence is reported as nil, nil.
func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if id == "" {
		return nil, ErrInvalidCustomerID
	}

	if s.remoteReady(ctx) {
		customer, err := s.remote.GetByID(ctx, id)
		if err == nil {
			mirrorUpsert(ctx, "customers", s.local, customer)
			return customer, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "customers", "error", err)
	}

	customer, ok, err := findLocal(ctx, s.local, func(c *domain.Customer) bool { return c.ID == id })
	if err != nil {
		zap.S().Warnw("fallback read failed", "entity", "customers", "error", err)
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return customer, nil
}

// FindByEmail retrieves a customer by email. Absence is reported as nil, nil.
func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.findBy(ctx,
		func(ctx context.Context) (*domain.Customer, error) { return s.remote.FindByEmail(ctx, email) },
		func(c *domain.Customer) bool { return strings.EqualFold(c.Email, email) },
	)
}

// FindByCPF retrieves a customer by government ID. Absence is reported as nil, nil.
func (s *CustomerService) FindByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	return s.findBy(ctx,
		func(ctx context.Context) (*domain.Customer, error) { return s.remote.FindByCPF(ctx, cpf) },
		func(c *domain.Customer) bool { return c.CPF == cpf },
	)
}

func (s *CustomerService) findBy(ctx context.Context, remote func(context.Context) (*domain.Customer, error), match func(*domain.Customer) bool) (*domain.Customer, error) {
	if s.remoteReady(ctx) {
		customer, err := remote(ctx)
		if err == nil {
			return customer, nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "customers", "error", err)
	}

	customer, ok, err := findLocal(ctx, s.local, match)
	if err != nil || !ok {
		return nil, nil
	}
	return customer, nil
}

// Create registers a new customer. A remote failure degrades to a
// fallback-only record with a locally minted ID.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	customer.ID = uuid.New().String()
	customer.RegisteredAt = time.Now()
	if customer.Status == "" {
		customer.Status = domain.CustomerActive
	}

	if s.remoteReady(ctx) {
		err := s.remote.Create(ctx, customer)
		if err == nil {
			mirrorUpsert(ctx, "customers", s.local, customer)
			return customer, nil
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "customers", "error", err)
	}

	customer.ID = fallback.NewLocalID()
	if err := s.local.Upsert(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// applyCustomerUpdate applies a partial update to a customer value. It is
// the fallback-path twin of the SQL update and must cover every field.
func applyCustomerUpdate(c *domain.Customer, upd domain.CustomerUpdate) {
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.CPF != nil {
		c.CPF = *upd.CPF
	}
	if upd.DriverLicense != nil {
		c.DriverLicense = *upd.DriverLicense
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	if upd.TotalRentals != nil {
		c.TotalRentals = *upd.TotalRentals
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
}

// Update applies a partial update, degrading to the fallback store on a
// remote failure.
func (s *CustomerService) Update(ctx context.Context, id string, upd domain.CustomerUpdate) (*domain.Customer, error) {
	if id == "" {
		return nil, ErrInvalidCustomerID
	}

	if s.remoteReady(ctx) {
		customer, err := s.remote.Update(ctx, id, upd)
		if err == nil {
			mirrorUpsert(ctx, "customers", s.local, customer)
			return customer, nil
		}
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "customers", "error", err)
	}

	customer, ok, err := findLocal(ctx, s.local, func(c *domain.Customer) bool { return c.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	applyCustomerUpdate(customer, upd)
	if err := s.local.Upsert(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer. Their rentals are not cascade-deleted; the
// dangling reference renders as a placeholder in name resolution.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidCustomerID
	}

	if s.remoteReady(ctx) {
		err := s.remote.Delete(ctx, id)
		if err == nil {
			mirrorRemove(ctx, "customers", s.local, id)
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "customers", "error", err)
	}

	return s.local.Remove(ctx, id)
}

// IncrementTotalRentals bumps the cached rental counter. Best effort by
// design: the counter is a convenience, not a source of truth.
func (s *CustomerService) IncrementTotalRentals(ctx context.Context, id string, delta int) error {
	if s.remoteReady(ctx) {
		err := s.remote.IncrementTotalRentals(ctx, id, delta)
		if err == nil {
			if customer, err := s.remote.GetByID(ctx, id); err == nil {
				mirrorUpsert(ctx, "customers", s.local, customer)
			}
			return nil
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "customers", "error", err)
	}

	customer, ok, err := findLocal(ctx, s.local, func(c *domain.Customer) bool { return c.ID == id })
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrNotFound
	}
	customer.TotalRentals += delta
	return s.local.Upsert(ctx, customer)
}
