package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/fallback"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// RentalService handles bookings. Besides plain CRUD through the resilient
// protocol it owns the two cross-entity behaviors: the best-effort
// totalRentals counter on customers and the autogenerated payment entry on
// the transition into "paid".
type RentalService struct {
	remote        repository.RentalRepository
	ready         Readiness
	local         fallback.List[*domain.Rental]
	customers     *CustomerService
	vehicles      *VehicleService
	payments      *PaymentService
	notifications *NotificationService
}

// NewRentalService creates a new RentalService.
func NewRentalService(
	remote repository.RentalRepository,
	ready Readiness,
	local fallback.List[*domain.Rental],
	customers *CustomerService,
	vehicles *VehicleService,
	payments *PaymentService,
	notifications *NotificationService,
) *RentalService {
	return &RentalService{
		remote:        remote,
		ready:         ready,
		local:         local,
		customers:     customers,
		vehicles:      vehicles,
		payments:      payments,
		notifications: notifications,
	}
}

func (s *RentalService) remoteReady(ctx context.Context) bool {
	return s.remote != nil && s.ready != nil && s.ready.Ready(ctx)
}

// CreateRentalRequest contains the parameters for creating a booking.
type CreateRentalRequest struct {
	CustomerID       string
	VehicleID        string
	PickupDate       time.Time
	ReturnDate       time.Time
	PickupLocationID string
	Notes            string
}

// Create registers a booking. The total is computed here, at creation time,
// as billed days times the vehicle's daily price. Creating also bumps the
// customer's cached rental counter; the two writes are independent and
// non-transactional, so the counter can drift.
func (s *RentalService) Create(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error) {
	if req.CustomerID == "" {
		return nil, ErrInvalidCustomerID
	}
	if req.VehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	if !req.ReturnDate.After(req.PickupDate) {
		return nil, ErrInvalidRentalPeriod
	}

	vehicle, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrInvalidVehicleID
	}

	available, err := s.IsVehicleAvailable(ctx, req.VehicleID, req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrVehicleUnavailable
	}

	rental := &domain.Rental{
		ID:               uuid.New().String(),
		CustomerID:       req.CustomerID,
		VehicleID:        req.VehicleID,
		PickupDate:       req.PickupDate,
		ReturnDate:       req.ReturnDate,
		PickupLocationID: req.PickupLocationID,
		Status:           domain.RentalPending,
		PaymentStatus:    domain.RentalPaymentPending,
		Notes:            req.Notes,
		CreatedAt:        time.Now(),
	}
	rental.TotalAmount = float64(rental.Days()) * vehicle.DailyPrice

	if s.remoteReady(ctx) {
		if err := s.remote.Create(ctx, rental); err == nil {
			mirrorUpsert(ctx, "rentals", s.local, rental)
		} else {
			zap.S().Warnw("remote write failed, degrading to fallback", "entity", "rentals", "error", err)
			rental.ID = fallback.NewLocalID()
			if err := s.local.Upsert(ctx, rental); err != nil {
				return nil, err
			}
		}
	} else {
		rental.ID = fallback.NewLocalID()
		if err := s.local.Upsert(ctx, rental); err != nil {
			return nil, err
		}
	}

	// Best-effort counter bump; a failure leaves the cached value stale.
	if err := s.customers.IncrementTotalRentals(ctx, rental.CustomerID, 1); err != nil {
		zap.S().Warnw("total rentals counter not updated", "customer_id", rental.CustomerID, "error", err)
	}

	if s.notifications != nil {
		s.notifications.NotifyRentalCreated(ctx, rental)
	}
	return rental, nil
}

// GetAll retrieves every booking.
func (s *RentalService) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	return s.getAll(ctx).value, nil
}

func (s *RentalService) getAll(ctx context.Context) result[[]*domain.Rental] {
	return readAll(ctx, "rentals", s.remoteReady(ctx), func(ctx context.Context) ([]*domain.Rental, error) {
		return s.remote.GetAll(ctx)
	}, s.local)
}

// GetByID retrieves a booking. Absence is reported as nil, nil.
func (s *RentalService) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	if id == "" {
		return nil, ErrInvalidRentalID
	}

	if s.remoteReady(ctx) {
		rental, err := s.remote.GetByID(ctx, id)
		if err == nil {
			mirrorUpsert(ctx, "rentals", s.local, rental)
			return rental, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "rentals", "error", err)
	}

	rental, ok, err := findLocal(ctx, s.local, func(r *domain.Rental) bool { return r.ID == id })
	if err != nil || !ok {
		return nil, nil
	}
	return rental, nil
}

// GetByCustomer retrieves the bookings referencing a customer.
func (s *RentalService) GetByCustomer(ctx context.Context, customerID string) ([]*domain.Rental, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	if s.remoteReady(ctx) {
		rentals, err := s.remote.GetByCustomer(ctx, customerID)
		if err == nil {
			return rentals, nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "rentals", "error", err)
	}

	all, err := s.local.GetAll(ctx)
	if err != nil {
		zap.S().Warnw("fallback read failed, serving empty collection", "entity", "rentals", "error", err)
		return nil, nil
	}
	var rentals []*domain.Rental
	for _, r := range all {
		if r.CustomerID == customerID {
			rentals = append(rentals, r)
		}
	}
	return rentals, nil
}

// IsVehicleAvailable reports whether no pending or active booking of the
// vehicle overlaps the period. The check runs over the full loaded
// collection; there is no reservation lock behind it.
func (s *RentalService) IsVehicleAvailable(ctx context.Context, vehicleID string, from, to time.Time) (bool, error) {
	rentals, err := s.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range rentals {
		if r.VehicleID != vehicleID {
			continue
		}
		if r.Status != domain.RentalPending && r.Status != domain.RentalActive {
			continue
		}
		if r.Overlaps(from, to) {
			return false, nil
		}
	}
	return true, nil
}

// applyRentalUpdate applies a partial update to a booking value.
func applyRentalUpdate(r *domain.Rental, upd domain.RentalUpdate) {
	if upd.CustomerID != nil {
		r.CustomerID = *upd.CustomerID
	}
	if upd.VehicleID != nil {
		r.VehicleID = *upd.VehicleID
	}
	if upd.PickupDate != nil {
		r.PickupDate = *upd.PickupDate
	}
	if upd.ReturnDate != nil {
		r.ReturnDate = *upd.ReturnDate
	}
	if upd.PickupLocationID != nil {
		r.PickupLocationID = *upd.PickupLocationID
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.TotalAmount != nil {
		r.TotalAmount = *upd.TotalAmount
	}
	if upd.PaymentStatus != nil {
		r.PaymentStatus = *upd.PaymentStatus
	}
	if upd.Notes != nil {
		r.Notes = *upd.Notes
	}
}

// Update applies a partial update, degrading to the fallback store on a
// remote failure.
func (s *RentalService) Update(ctx context.Context, id string, upd domain.RentalUpdate) (*domain.Rental, error) {
	if id == "" {
		return nil, ErrInvalidRentalID
	}

	if s.remoteReady(ctx) {
		rental, err := s.remote.Update(ctx, id, upd)
		if err == nil {
			mirrorUpsert(ctx, "rentals", s.local, rental)
			return rental, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "rentals", "error", err)
	}

	rental, ok, err := findLocal(ctx, s.local, func(r *domain.Rental) bool { return r.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	applyRentalUpdate(rental, upd)
	if err := s.local.Upsert(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

// Delete removes a booking and, best effort, walks the customer's cached
// rental counter back down.
func (s *RentalService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidRentalID
	}

	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.remoteReady(ctx) {
		err := s.remote.Delete(ctx, id)
		if err == nil {
			mirrorRemove(ctx, "rentals", s.local, id)
		} else if errors.Is(err, repository.ErrNotFound) {
			return err
		} else {
			zap.S().Warnw("remote write failed, degrading to fallback", "entity", "rentals", "error", err)
			if err := s.local.Remove(ctx, id); err != nil {
				return err
			}
		}
	} else if err := s.local.Remove(ctx, id); err != nil {
		return err
	}

	if rental != nil {
		if err := s.customers.IncrementTotalRentals(ctx, rental.CustomerID, -1); err != nil {
			zap.S().Warnw("total rentals counter not updated", "customer_id", rental.CustomerID, "error", err)
		}
	}
	return nil
}

// canTransition encodes the booking lifecycle:
// pending -> active -> completed, or pending/active -> cancelled.
func canTransition(from, to domain.RentalStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case domain.RentalPending:
		return to == domain.RentalActive || to == domain.RentalCancelled
	case domain.RentalActive:
		return to == domain.RentalCompleted || to == domain.RentalCancelled
	default:
		return false
	}
}

// UpdateStatus moves a booking through its lifecycle. No side effects
// beyond a user-facing notification.
func (s *RentalService) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) (*domain.Rental, error) {
	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, repository.ErrNotFound
	}
	if !canTransition(rental.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.Update(ctx, id, domain.RentalUpdate{Status: &status})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.NotifyRentalStatusChanged(ctx, updated)
	}
	return updated, nil
}

// PaymentStatusResult reports the outcome of a payment-status change.
type PaymentStatusResult struct {
	Rental *domain.Rental

	// PaymentCreated is true when the transition into "paid" synthesized a
	// ledger entry.
	PaymentCreated bool

	// PaymentFailed is true when the entry should have been created but the
	// write failed. The status change itself is not rolled back.
	PaymentFailed bool
}

// UpdatePaymentStatus sets the payment status of a booking. Entering "paid"
// from any other state records an approved rental payment for the booking
// total; repeating "paid" is idempotent and records nothing. Paid is
// terminal: walking it back would orphan the synthesized ledger entry.
func (s *RentalService) UpdatePaymentStatus(ctx context.Context, id string, status domain.RentalPaymentStatus) (*PaymentStatusResult, error) {
	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, repository.ErrNotFound
	}
	previous := rental.PaymentStatus
	if previous == domain.RentalPaymentPaid && status != domain.RentalPaymentPaid {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.Update(ctx, id, domain.RentalUpdate{PaymentStatus: &status})
	if err != nil {
		return nil, err
	}

	res := &PaymentStatusResult{Rental: updated}
	if status == domain.RentalPaymentPaid && previous != domain.RentalPaymentPaid {
		if err := s.recordRentalPayment(ctx, updated); err != nil {
			zap.S().Errorw("autogenerated payment entry failed", "rental_id", id, "error", err)
			res.PaymentFailed = true
		} else {
			res.PaymentCreated = true
		}
	}

	if s.notifications != nil {
		s.notifications.NotifyPaymentStatusSet(ctx, updated, res.PaymentFailed)
	}
	return res, nil
}

// recordRentalPayment synthesizes the ledger entry for a booking that was
// just marked paid.
func (s *RentalService) recordRentalPayment(ctx context.Context, rental *domain.Rental) error {
	customerName := CustomerNotFound
	if customer, err := s.customers.GetByID(ctx, rental.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}
	vehicleName := VehicleNotFound
	if vehicle, err := s.vehicles.GetByID(ctx, rental.VehicleID); err == nil && vehicle != nil {
		vehicleName = vehicle.DisplayName()
	}

	_, err := s.payments.Create(ctx, &domain.Payment{
		RentalID: rental.ID,
		Type:     domain.PaymentTypeRentalPayment,
		Amount:   rental.TotalAmount,
		Method:   domain.MethodCash,
		PaidAt:   time.Now(),
		Status:   domain.PaymentApproved,
		Origin:   domain.OriginAutomatic,
		Notes:    fmt.Sprintf("Booking %s marked paid (%s, %s)", rental.Code(), customerName, vehicleName),
	})
	return err
}
