package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// rentalFixture wires a RentalService against mock stores with one vehicle
// (v1, R$100/day) and one customer (c1) preloaded in the remote.
type rentalFixture struct {
	svc           *RentalService
	customers     *CustomerService
	rentalRepo    *mockRentalRepo
	customerRepo  *mockCustomerRepo
	vehicleRepo   *mockVehicleRepo
	paymentRepo   *mockPaymentRepo
	rentalList    *mockList[*domain.Rental]
	paymentList   *mockList[*domain.Payment]
	notifications *NotificationService
}

func newRentalFixture() *rentalFixture {
	f := &rentalFixture{
		rentalRepo:    newMockRentalRepo(),
		customerRepo:  newMockCustomerRepo(),
		vehicleRepo:   newMockVehicleRepo(),
		paymentRepo:   newMockPaymentRepo(),
		rentalList:    newRentalList(),
		paymentList:   newPaymentList(),
		notifications: NewNotificationService(),
	}
	f.vehicleRepo.Add(&domain.Vehicle{ID: "v1", Name: "Onix", DailyPrice: 100, Available: true})
	f.customerRepo.Add(&domain.Customer{ID: "c1", Name: "Ana"})

	vehicles := NewVehicleService(f.vehicleRepo, remoteUp, newVehicleList())
	f.customers = NewCustomerService(f.customerRepo, remoteUp, newCustomerList())
	payments := NewPaymentService(f.paymentRepo, remoteUp, f.paymentList)
	f.svc = NewRentalService(f.rentalRepo, remoteUp, f.rentalList, f.customers, vehicles, payments, f.notifications)
	return f
}

func threeDayRequest() CreateRentalRequest {
	return CreateRentalRequest{
		CustomerID: "c1",
		VehicleID:  "v1",
		PickupDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
	}
}

func TestRentalCreateComputesTotal(t *testing.T) {
	f := newRentalFixture()

	rental, err := f.svc.Create(context.Background(), threeDayRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rental.TotalAmount != 300 {
		t.Errorf("expected total 300 (3 days x 100), got %.2f", rental.TotalAmount)
	}
	if rental.Status != domain.RentalPending || rental.PaymentStatus != domain.RentalPaymentPending {
		t.Errorf("expected pending/pending, got %s/%s", rental.Status, rental.PaymentStatus)
	}
	if f.customerRepo.Get("c1").TotalRentals != 1 {
		t.Errorf("expected counter bumped to 1, got %d", f.customerRepo.Get("c1").TotalRentals)
	}
}

func TestRentalCreateRejectsBadPeriod(t *testing.T) {
	f := newRentalFixture()

	req := threeDayRequest()
	req.ReturnDate = req.PickupDate
	if _, err := f.svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidRentalPeriod) {
		t.Fatalf("expected ErrInvalidRentalPeriod, got %v", err)
	}
}

func TestRentalCreateRejectsOverlap(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{
		ID:         "r1",
		VehicleID:  "v1",
		CustomerID: "c1",
		Status:     domain.RentalActive,
		PickupDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})

	if _, err := f.svc.Create(context.Background(), threeDayRequest()); !errors.Is(err, ErrVehicleUnavailable) {
		t.Fatalf("expected ErrVehicleUnavailable, got %v", err)
	}
}

func TestRentalCreateIgnoresFinishedOverlap(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{
		ID:         "r1",
		VehicleID:  "v1",
		CustomerID: "c1",
		Status:     domain.RentalCompleted,
		PickupDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})

	if _, err := f.svc.Create(context.Background(), threeDayRequest()); err != nil {
		t.Fatalf("completed bookings must not block, got %v", err)
	}
}

// Two identical submissions produce two bookings. There is no request-level
// dedup; retrying a timed-out create duplicates the booking.
func TestRentalCreateNotIdempotent(t *testing.T) {
	f := newRentalFixture()

	first, err := f.svc.Create(context.Background(), threeDayRequest())
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	// The vehicle now has a pending booking for this period, so the second
	// submission needs a free window.
	req := threeDayRequest()
	req.PickupDate = req.PickupDate.AddDate(0, 1, 0)
	req.ReturnDate = req.ReturnDate.AddDate(0, 1, 0)
	second, err := f.svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected two distinct bookings")
	}
	if f.rentalRepo.CreateCallCount != 2 {
		t.Errorf("expected 2 remote creates, got %d", f.rentalRepo.CreateCallCount)
	}
	if f.customerRepo.Get("c1").TotalRentals != 2 {
		t.Errorf("expected counter 2, got %d", f.customerRepo.Get("c1").TotalRentals)
	}
}

func TestRentalCreateDegradesToFallback(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.CreateError = errRemoteDown

	rental, err := f.svc.Create(context.Background(), threeDayRequest())
	if err != nil {
		t.Fatalf("Create must degrade silently, got %v", err)
	}
	if !localIDPattern.MatchString(rental.ID) {
		t.Errorf("expected a locally minted ID, got %q", rental.ID)
	}
	if f.rentalList.Len() != 1 {
		t.Errorf("expected the booking stored in the fallback")
	}
}

func TestRentalDeleteWalksCounterBack(t *testing.T) {
	f := newRentalFixture()

	rental, err := f.svc.Create(context.Background(), threeDayRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := f.svc.Delete(context.Background(), rental.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := f.customerRepo.Get("c1").TotalRentals; got != 0 {
		t.Errorf("expected counter back to 0, got %d", got)
	}
}

// Deleting a customer must not cascade into their bookings: the booking
// survives with a dangling reference that renders as a placeholder.
func TestCustomerDeleteLeavesBookingsDangling(t *testing.T) {
	f := newRentalFixture()

	rental, err := f.svc.Create(context.Background(), threeDayRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := f.customers.Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	rentals, err := f.svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	var survivor *domain.Rental
	for _, r := range rentals {
		if r.ID == rental.ID {
			survivor = r
		}
	}
	if survivor == nil {
		t.Fatal("booking must survive the customer deletion")
	}

	customers, err := f.customers.GetAll(context.Background())
	if err != nil {
		t.Fatalf("customers GetAll: %v", err)
	}
	if got := ResolveCustomerName(customers, survivor.CustomerID); got != CustomerNotFound {
		t.Errorf("expected %q for the dangling reference, got %q", CustomerNotFound, got)
	}
}

func TestRentalStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to domain.RentalStatus
		ok       bool
	}{
		{domain.RentalPending, domain.RentalActive, true},
		{domain.RentalPending, domain.RentalCancelled, true},
		{domain.RentalPending, domain.RentalCompleted, false},
		{domain.RentalActive, domain.RentalCompleted, true},
		{domain.RentalActive, domain.RentalCancelled, true},
		{domain.RentalActive, domain.RentalPending, false},
		{domain.RentalCompleted, domain.RentalActive, false},
		{domain.RentalCancelled, domain.RentalActive, false},
		{domain.RentalActive, domain.RentalActive, true},
	}
	for _, tc := range cases {
		if got := canTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("canTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestRentalUpdateStatusRejectsInvalid(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{ID: "r1", CustomerID: "c1", VehicleID: "v1", Status: domain.RentalPending})

	if _, err := f.svc.UpdateStatus(context.Background(), "r1", domain.RentalCompleted); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestPaidTransitionCreatesExactlyOnePayment(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{
		ID:            "r1",
		CustomerID:    "c1",
		VehicleID:     "v1",
		Status:        domain.RentalActive,
		PaymentStatus: domain.RentalPaymentPending,
		TotalAmount:   300,
	})

	res, err := f.svc.UpdatePaymentStatus(context.Background(), "r1", domain.RentalPaymentPaid)
	if err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	if !res.PaymentCreated || res.PaymentFailed {
		t.Fatalf("expected PaymentCreated, got %+v", res)
	}
	if f.paymentRepo.CreateCallCount != 1 {
		t.Fatalf("expected exactly 1 ledger entry, got %d", f.paymentRepo.CreateCallCount)
	}

	payments, _ := f.paymentRepo.GetByRental(context.Background(), "r1")
	p := payments[0]
	if p.Type != domain.PaymentTypeRentalPayment || p.Status != domain.PaymentApproved || p.Origin != domain.OriginAutomatic {
		t.Errorf("unexpected entry %+v", p)
	}
	if p.Amount != 300 {
		t.Errorf("expected entry for the booking total 300, got %.2f", p.Amount)
	}
	if p.Method != domain.MethodCash {
		t.Errorf("expected default method cash, got %s", p.Method)
	}
}

func TestPaidToPaidIsIdempotent(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{
		ID:            "r1",
		CustomerID:    "c1",
		VehicleID:     "v1",
		PaymentStatus: domain.RentalPaymentPending,
		TotalAmount:   300,
	})

	if _, err := f.svc.UpdatePaymentStatus(context.Background(), "r1", domain.RentalPaymentPaid); err != nil {
		t.Fatalf("first UpdatePaymentStatus: %v", err)
	}
	res, err := f.svc.UpdatePaymentStatus(context.Background(), "r1", domain.RentalPaymentPaid)
	if err != nil {
		t.Fatalf("second UpdatePaymentStatus: %v", err)
	}
	if res.PaymentCreated {
		t.Error("paid to paid must not synthesize another entry")
	}
	if f.paymentRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 ledger entry total, got %d", f.paymentRepo.CreateCallCount)
	}
}

// Paid is terminal for the payment status; walking a paid booking back
// would orphan the synthesized ledger entry.
func TestPaidCannotBeWalkedBack(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{
		ID:            "r1",
		CustomerID:    "c1",
		VehicleID:     "v1",
		PaymentStatus: domain.RentalPaymentPaid,
		TotalAmount:   300,
	})

	for _, status := range []domain.RentalPaymentStatus{domain.RentalPaymentPending, domain.RentalPaymentOverdue} {
		if _, err := f.svc.UpdatePaymentStatus(context.Background(), "r1", status); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Errorf("paid -> %s: expected ErrInvalidStatusTransition, got %v", status, err)
		}
	}
	if f.paymentRepo.CreateCallCount != 0 {
		t.Errorf("rejected transitions must not touch the ledger, got %d entries", f.paymentRepo.CreateCallCount)
	}
}

func TestOverdueToPaidCreatesPayment(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{
		ID:            "r1",
		CustomerID:    "c1",
		VehicleID:     "v1",
		PaymentStatus: domain.RentalPaymentOverdue,
		TotalAmount:   450,
	})

	res, err := f.svc.UpdatePaymentStatus(context.Background(), "r1", domain.RentalPaymentPaid)
	if err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	if !res.PaymentCreated {
		t.Error("overdue to paid must synthesize an entry")
	}
}

// The status change and the ledger entry are two independent writes. When
// the entry fails on both stores the status stays paid and the caller is
// told the record is missing.
func TestPaidTransitionPaymentFailureIsNotRolledBack(t *testing.T) {
	f := newRentalFixture()
	f.rentalRepo.Add(&domain.Rental{
		ID:            "r1",
		CustomerID:    "c1",
		VehicleID:     "v1",
		PaymentStatus: domain.RentalPaymentPending,
		TotalAmount:   300,
	})
	f.paymentRepo.CreateError = errRemoteDown
	f.paymentList.UpsertError = errRemoteDown

	res, err := f.svc.UpdatePaymentStatus(context.Background(), "r1", domain.RentalPaymentPaid)
	if err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	if !res.PaymentFailed || res.PaymentCreated {
		t.Fatalf("expected PaymentFailed without PaymentCreated, got %+v", res)
	}
	if res.Rental.PaymentStatus != domain.RentalPaymentPaid {
		t.Errorf("status change must not be rolled back, got %s", res.Rental.PaymentStatus)
	}

	// The distinct outcome also reaches the notification feed.
	recent := f.notifications.Recent()
	if len(recent) == 0 || recent[0].Type != NotificationPaymentRecordFailed {
		t.Errorf("expected a payment-record-failed notification, got %+v", recent)
	}
}
