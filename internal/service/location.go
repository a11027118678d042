package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/fallback"
	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// LocationService handles pickup locations with the resilient protocol.
type LocationService struct {
	remote repository.LocationRepository
	ready  Readiness
	local  fallback.List[*domain.PickupLocation]
}

// NewLocationService creates a new LocationService.
func NewLocationService(remote repository.LocationRepository, ready Readiness, local fallback.List[*domain.PickupLocation]) *LocationService {
	return &LocationService{remote: remote, ready: ready, local: local}
}

func (s *LocationService) remoteReady(ctx context.Context) bool {
	return s.remote != nil && s.ready != nil && s.ready.Ready(ctx)
}

// GetAll retrieves every pickup location sorted by display order. The remote
// query already orders; the fallback path sorts in memory.
func (s *LocationService) GetAll(ctx context.Context) ([]*domain.PickupLocation, error) {
	res := s.getAll(ctx)
	if res.source != SourceRemote {
		sort.SliceStable(res.value, func(i, j int) bool {
			return res.value[i].DisplayOrder < res.value[j].DisplayOrder
		})
	}
	return res.value, nil
}

func (s *LocationService) getAll(ctx context.Context) result[[]*domain.PickupLocation] {
	return readAll(ctx, "pickup_locations", s.remoteReady(ctx), func(ctx context.Context) ([]*domain.PickupLocation, error) {
		return s.remote.GetAll(ctx)
	}, s.local)
}

// GetActive retrieves the active locations only, for the public reservation flow.
func (s *LocationService) GetActive(ctx context.Context) ([]*domain.PickupLocation, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var active []*domain.PickupLocation
	for _, l := range all {
		if l.Active {
			active = append(active, l)
		}
	}
	return active, nil
}

// GetByID retrieves a pickup location. Absence is reported as nil, nil.
func (s *LocationService) GetByID(ctx context.Context, id string) (*domain.PickupLocation, error) {
	if s.remoteReady(ctx) {
		location, err := s.remote.GetByID(ctx, id)
		if err == nil {
			return location, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		zap.S().Warnw("remote read failed, serving fallback", "entity", "pickup_locations", "error", err)
	}

	location, ok, err := findLocal(ctx, s.local, func(l *domain.PickupLocation) bool { return l.ID == id })
	if err != nil || !ok {
		return nil, nil
	}
	return location, nil
}

// Create adds a pickup location, degrading to the fallback store on a
// remote failure.
func (s *LocationService) Create(ctx context.Context, location *domain.PickupLocation) (*domain.PickupLocation, error) {
	location.ID = uuid.New().String()

	if s.remoteReady(ctx) {
		err := s.remote.Create(ctx, location)
		if err == nil {
			mirrorUpsert(ctx, "pickup_locations", s.local, location)
			return location, nil
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "pickup_locations", "error", err)
	}

	location.ID = fallback.NewLocalID()
	if err := s.local.Upsert(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// applyLocationUpdate applies a partial update to a pickup location value.
func applyLocationUpdate(l *domain.PickupLocation, upd domain.PickupLocationUpdate) {
	if upd.Name != nil {
		l.Name = *upd.Name
	}
	if upd.Address != nil {
		l.Address = *upd.Address
	}
	if upd.City != nil {
		l.City = *upd.City
	}
	if upd.State != nil {
		l.State = *upd.State
	}
	if upd.Active != nil {
		l.Active = *upd.Active
	}
	if upd.DisplayOrder != nil {
		l.DisplayOrder = *upd.DisplayOrder
	}
	if upd.Notes != nil {
		l.Notes = *upd.Notes
	}
}

// Update applies a partial update, degrading to the fallback store on a
// remote failure.
func (s *LocationService) Update(ctx context.Context, id string, upd domain.PickupLocationUpdate) (*domain.PickupLocation, error) {
	if s.remoteReady(ctx) {
		location, err := s.remote.Update(ctx, id, upd)
		if err == nil {
			mirrorUpsert(ctx, "pickup_locations", s.local, location)
			return location, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "pickup_locations", "error", err)
	}

	location, ok, err := findLocal(ctx, s.local, func(l *domain.PickupLocation) bool { return l.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	applyLocationUpdate(location, upd)
	if err := s.local.Upsert(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// Delete removes a pickup location.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	if s.remoteReady(ctx) {
		err := s.remote.Delete(ctx, id)
		if err == nil {
			mirrorRemove(ctx, "pickup_locations", s.local, id)
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		zap.S().Warnw("remote write failed, degrading to fallback", "entity", "pickup_locations", "error", err)
	}

	return s.local.Remove(ctx, id)
}
