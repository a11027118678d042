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
	"github.com/raphaestudos2/locadoradestino/internal/seed"
)

// VehicleService handles fleet operations. Reads follow the resilient
// protocol with the seed catalog as the final link of the chain; writes
// deliberately require the remote store (there is no local-only fleet edit).
type VehicleService struct {
	remote repository.VehicleRepository
	ready  Readiness
	local  fallback.List[*domain.Vehicle]
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(remote repository.VehicleRepository, ready Readiness, local fallback.List[*domain.Vehicle]) *VehicleService {
	return &VehicleService{remote: remote, ready: ready, local: local}
}

func (s *VehicleService) remoteReady(ctx context.Context) bool {
	return s.remote != nil && s.ready != nil && s.ready.Ready(ctx)
}

// GetAll retrieves the fleet. An empty result from either store is replaced
// by the seed catalog so a fresh install never shows an empty fleet.
func (s *VehicleService) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.getAll(ctx).value, nil
}

func (s *VehicleService) getAll(ctx context.Context) result[[]*domain.Vehicle] {
	res := readAll(ctx, "vehicles", s.remoteReady(ctx), func(ctx context.Context) ([]*domain.Vehicle, error) {
		return s.remote.GetAll(ctx)
	}, s.local)

	if len(res.value) == 0 {
		return result[[]*domain.Vehicle]{value: seed.Vehicles(), source: SourceSeed}
	}
	return res
}

// GetByID retrieves a vehicle. Absence is reported as nil, nil.
func (s *VehicleService) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if id == "" {
		return nil, ErrInvalidVehicleID
	}

	if s.remoteReady(ctx) {
		vehicle, err := s.remote.GetByID(ctx, id)
		if err == nil {
			mirrorUpsert(ctx, "vehicles", s.local, vehicle)
			return vehicle, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return s.seedByID(id), nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "vehicles", "error", err)
	}

	vehicle, ok, err := findLocal(ctx, s.local, func(v *domain.Vehicle) bool { return v.ID == id })
	if err != nil {
		zap.S().Warnw("fallback read failed", "entity", "vehicles", "error", err)
	}
	if !ok {
		return s.seedByID(id), nil
	}
	return vehicle, nil
}

func (s *VehicleService) seedByID(id string) *domain.Vehicle {
	for _, v := range seed.Vehicles() {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Create adds a vehicle to the fleet. Unlike the other entities this write
// has no local-only path and fails when the backend is not usable.
func (s *VehicleService) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}
	if !s.remoteReady(ctx) {
		return nil, ErrBackendRequired
	}

	vehicle.ID = uuid.New().String()
	vehicle.CreatedAt = time.Now()

	if err := s.remote.Create(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
		zap.S().Errorw("remote vehicle create failed", "error", err)
		return nil, ErrBackendRequired
	}

	mirrorUpsert(ctx, "vehicles", s.local, vehicle)
	return vehicle, nil
}

// Update applies a partial update to a vehicle.
func (s *VehicleService) Update(ctx context.Context, id string, upd domain.VehicleUpdate) (*domain.Vehicle, error) {
	if id == "" {
		return nil, ErrInvalidVehicleID
	}
	if upd.DailyPrice != nil && *upd.DailyPrice <= 0 {
		return nil, domain.ErrInvalidDailyPrice
	}
	if !s.remoteReady(ctx) {
		return nil, ErrBackendRequired
	}

	vehicle, err := s.remote.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
		zap.S().Errorw("remote vehicle update failed", "vehicle_id", id, "error", err)
		return nil, ErrBackendRequired
	}

	mirrorUpsert(ctx, "vehicles", s.local, vehicle)
	return vehicle, nil
}

// Delete removes a vehicle from the fleet.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidVehicleID
	}
	if !s.remoteReady(ctx) {
		return ErrBackendRequired
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		zap.S().Errorw("remote vehicle delete failed", "vehicle_id", id, "error", err)
		return ErrBackendRequired
	}

	mirrorRemove(ctx, "vehicles", s.local, id)
	return nil
}
