package service

import (
	"context"
	"errors"
	"testing"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/seed"
)

var errRemoteDown = errors.New("connection refused")

func TestVehicleGetAllMirrorsRemoteIntoFallback(t *testing.T) {
	repo := newMockVehicleRepo()
	repo.Add(&domain.Vehicle{ID: "v1", Name: "Onix", DailyPrice: 120})
	local := newVehicleList()
	svc := NewVehicleService(repo, remoteUp, local)

	vehicles, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
	}
	if local.Len() != 1 {
		t.Errorf("expected remote result mirrored into fallback, got %d entries", local.Len())
	}
	if local.ReplaceAllCalls != 1 {
		t.Errorf("expected 1 ReplaceAll call, got %d", local.ReplaceAllCalls)
	}
}

func TestVehicleGetAllServesFallbackOnRemoteFailure(t *testing.T) {
	repo := newMockVehicleRepo()
	repo.GetAllError = errRemoteDown
	local := newVehicleList()
	local.Upsert(context.Background(), &domain.Vehicle{ID: "v1", Name: "Onix", DailyPrice: 120})
	svc := NewVehicleService(repo, remoteUp, local)

	vehicles, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll must not surface remote failure, got %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].ID != "v1" {
		t.Fatalf("expected fallback vehicle v1, got %+v", vehicles)
	}
}

func TestVehicleGetAllSubstitutesSeedWhenEmpty(t *testing.T) {
	svc := NewVehicleService(nil, remoteDown, newVehicleList())

	vehicles, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(vehicles) != len(seed.Vehicles()) {
		t.Fatalf("expected the seed catalog, got %d vehicles", len(vehicles))
	}
}

func TestVehicleGetAllPrefersStoredOverSeed(t *testing.T) {
	local := newVehicleList()
	local.Upsert(context.Background(), &domain.Vehicle{ID: "v1", Name: "Onix", DailyPrice: 120})
	svc := NewVehicleService(nil, remoteDown, local)

	vehicles, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].ID != "v1" {
		t.Fatalf("expected the stored vehicle, not the seed catalog, got %d", len(vehicles))
	}
}

func TestVehicleGetByIDFallsBackToSeed(t *testing.T) {
	svc := NewVehicleService(nil, remoteDown, newVehicleList())

	want := seed.Vehicles()[0]
	got, err := svc.GetByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.ID != want.ID {
		t.Fatalf("expected seed vehicle %s, got %+v", want.ID, got)
	}

	missing, err := svc.GetByID(context.Background(), "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for unknown id, got %+v, %v", missing, err)
	}
}

func TestVehicleCreateRequiresBackend(t *testing.T) {
	svc := NewVehicleService(nil, remoteDown, newVehicleList())

	_, err := svc.Create(context.Background(), &domain.Vehicle{Name: "Onix", DailyPrice: 120})
	if !errors.Is(err, ErrBackendRequired) {
		t.Fatalf("expected ErrBackendRequired, got %v", err)
	}
}

func TestVehicleCreateDoesNotDegradeOnRemoteFailure(t *testing.T) {
	repo := newMockVehicleRepo()
	repo.CreateError = errRemoteDown
	local := newVehicleList()
	svc := NewVehicleService(repo, remoteUp, local)

	_, err := svc.Create(context.Background(), &domain.Vehicle{Name: "Onix", DailyPrice: 120})
	if !errors.Is(err, ErrBackendRequired) {
		t.Fatalf("expected ErrBackendRequired, got %v", err)
	}
	if local.Len() != 0 {
		t.Errorf("fleet write must not land in the fallback store")
	}
}

func TestVehicleCreateValidates(t *testing.T) {
	svc := NewVehicleService(newMockVehicleRepo(), remoteUp, newVehicleList())

	if _, err := svc.Create(context.Background(), &domain.Vehicle{Name: "Onix"}); !errors.Is(err, domain.ErrInvalidDailyPrice) {
		t.Errorf("expected ErrInvalidDailyPrice, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.Vehicle{DailyPrice: 100}); !errors.Is(err, domain.ErrVehicleNameRequired) {
		t.Errorf("expected ErrVehicleNameRequired, got %v", err)
	}
}

func TestVehicleCreateMirrors(t *testing.T) {
	repo := newMockVehicleRepo()
	local := newVehicleList()
	svc := NewVehicleService(repo, remoteUp, local)

	vehicle, err := svc.Create(context.Background(), &domain.Vehicle{Name: "Onix", DailyPrice: 120})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if vehicle.ID == "" {
		t.Fatal("expected a minted ID")
	}
	if local.Len() != 1 {
		t.Errorf("expected the new vehicle mirrored into the fallback")
	}
}
