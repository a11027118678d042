package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationRentalCreated       NotificationType = "RENTAL_CREATED"
	NotificationRentalStatusChanged NotificationType = "RENTAL_STATUS_CHANGED"
	NotificationPaymentStatusSet    NotificationType = "PAYMENT_STATUS_SET"
	NotificationPaymentRecordFailed NotificationType = "PAYMENT_RECORD_FAILED"
	NotificationReservationReceived NotificationType = "RESERVATION_RECEIVED"
)

// Notification is a dismissible toast surfaced to the back-office screens.
type Notification struct {
	Type      NotificationType
	Title     string
	Message   string
	CreatedAt time.Time
}

// NotificationService collects user-facing toasts. Delivery is in-process:
// the screens poll the recent list; nothing blocks on it.
type NotificationService struct {
	mu     sync.Mutex
	recent []Notification
}

const recentNotificationLimit = 50

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyRentalCreated announces a new booking.
func (s *NotificationService) NotifyRentalCreated(ctx context.Context, rental *domain.Rental) {
	s.send(Notification{
		Type:      NotificationRentalCreated,
		Title:     "Rental created",
		Message:   fmt.Sprintf("Booking %s registered", rental.Code()),
		CreatedAt: time.Now(),
	})
}

// NotifyRentalStatusChanged announces a booking lifecycle change.
func (s *NotificationService) NotifyRentalStatusChanged(ctx context.Context, rental *domain.Rental) {
	s.send(Notification{
		Type:      NotificationRentalStatusChanged,
		Title:     "Status updated",
		Message:   fmt.Sprintf("Booking %s is now %s", rental.Code(), rental.Status),
		CreatedAt: time.Now(),
	})
}

// NotifyPaymentStatusSet announces a payment-status change. When the
// autogenerated payment record could not be written the toast says so
// instead; the status change itself is never rolled back.
func (s *NotificationService) NotifyPaymentStatusSet(ctx context.Context, rental *domain.Rental, paymentRecordFailed bool) {
	if paymentRecordFailed {
		s.send(Notification{
			Type:      NotificationPaymentRecordFailed,
			Title:     "Status updated, payment record failed",
			Message:   fmt.Sprintf("Booking %s marked %s but the payment entry was not recorded", rental.Code(), rental.PaymentStatus),
			CreatedAt: time.Now(),
		})
		return
	}
	s.send(Notification{
		Type:      NotificationPaymentStatusSet,
		Title:     "Status updated",
		Message:   fmt.Sprintf("Booking %s payment is now %s", rental.Code(), rental.PaymentStatus),
		CreatedAt: time.Now(),
	})
}

// NotifyReservationReceived announces a public reservation request.
func (s *NotificationService) NotifyReservationReceived(ctx context.Context, rental *domain.Rental, customerName string) {
	s.send(Notification{
		Type:      NotificationReservationReceived,
		Title:     "New reservation",
		Message:   fmt.Sprintf("%s requested booking %s", customerName, rental.Code()),
		CreatedAt: time.Now(),
	})
}

// Recent returns the newest notifications, most recent first.
func (s *NotificationService) Recent() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.recent))
	for i, n := range s.recent {
		out[len(s.recent)-1-i] = n
	}
	return out
}

func (s *NotificationService) send(n Notification) {
	zap.S().Infow("notification",
		"type", n.Type,
		"title", n.Title,
		"message", n.Message,
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append(s.recent, n)
	if len(s.recent) > recentNotificationLimit {
		s.recent = s.recent[len(s.recent)-recentNotificationLimit:]
	}
}
