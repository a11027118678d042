package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

func TestNotificationsRecentNewestFirst(t *testing.T) {
	svc := NewNotificationService()
	ctx := context.Background()

	svc.NotifyRentalCreated(ctx, &domain.Rental{ID: "first234"})
	svc.NotifyRentalStatusChanged(ctx, &domain.Rental{ID: "second34", Status: domain.RentalActive})

	recent := svc.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(recent))
	}
	if recent[0].Type != NotificationRentalStatusChanged {
		t.Errorf("expected newest first, got %s", recent[0].Type)
	}
}

func TestNotificationsRingIsBounded(t *testing.T) {
	svc := NewNotificationService()
	ctx := context.Background()

	for i := 0; i < recentNotificationLimit+10; i++ {
		svc.NotifyRentalCreated(ctx, &domain.Rental{ID: fmt.Sprintf("rental%03d", i)})
	}

	if got := len(svc.Recent()); got != recentNotificationLimit {
		t.Fatalf("expected the ring capped at %d, got %d", recentNotificationLimit, got)
	}
}
