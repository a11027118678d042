package service

import (
	"testing"
	"time"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

var statsNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func approvedPayment(amount float64, paidAt time.Time) *domain.Payment {
	return &domain.Payment{
		Type:   domain.PaymentTypeRentalPayment,
		Amount: amount,
		Status: domain.PaymentApproved,
		PaidAt: paidAt,
	}
}

func TestComputeDashboardMonthBucket(t *testing.T) {
	payments := []*domain.Payment{
		approvedPayment(100, statsNow.AddDate(0, 0, -1)), // this month
		approvedPayment(50, statsNow.AddDate(0, -1, 0)),  // last month
	}

	stats := ComputeDashboard(nil, nil, nil, payments, statsNow)
	if stats.MonthlyRevenue != 100 {
		t.Errorf("expected monthly revenue 100, got %.2f", stats.MonthlyRevenue)
	}
}

func TestComputeDashboardCounts(t *testing.T) {
	vehicles := []*domain.Vehicle{
		{ID: "v1", Available: true},
		{ID: "v2", Available: false},
	}
	customers := []*domain.Customer{{ID: "c1"}}
	rentals := []*domain.Rental{
		{ID: "r1", Status: domain.RentalActive, PaymentStatus: domain.RentalPaymentPending},
		{ID: "r2", Status: domain.RentalCompleted, PaymentStatus: domain.RentalPaymentPaid},
	}

	stats := ComputeDashboard(vehicles, customers, rentals, nil, statsNow)
	if stats.TotalVehicles != 2 || stats.AvailableVehicles != 1 {
		t.Errorf("vehicle counts wrong: %+v", stats)
	}
	if stats.ActiveRentals != 1 || stats.PendingPayments != 1 {
		t.Errorf("rental counts wrong: %+v", stats)
	}
	if stats.TotalCustomers != 1 {
		t.Errorf("customer count wrong: %+v", stats)
	}
}

func TestComputeDashboardIgnoresUnapprovedRevenue(t *testing.T) {
	pending := approvedPayment(100, statsNow)
	pending.Status = domain.PaymentPending
	refund := approvedPayment(40, statsNow)
	refund.Type = domain.PaymentTypeRefund

	stats := ComputeDashboard(nil, nil, nil, []*domain.Payment{pending, refund}, statsNow)
	if stats.MonthlyRevenue != 0 {
		t.Errorf("pending entries and refunds are not revenue, got %.2f", stats.MonthlyRevenue)
	}
}

func TestComputeFinancialSummary(t *testing.T) {
	refund := approvedPayment(30, statsNow)
	refund.Type = domain.PaymentTypeRefund
	payments := []*domain.Payment{
		approvedPayment(200, statsNow),
		approvedPayment(100, statsNow.AddDate(0, -2, 0)),
		refund,
	}

	summary := ComputeFinancialSummary(payments, statsNow)
	if summary.TotalRevenue != 300 || summary.TotalExpense != 30 || summary.Net != 270 {
		t.Errorf("totals wrong: %+v", summary)
	}
	if summary.MonthRevenue != 200 || summary.MonthExpense != 30 || summary.MonthNet != 170 {
		t.Errorf("month bucket wrong: %+v", summary)
	}
}

func TestResolveNamesWithPlaceholders(t *testing.T) {
	customers := []*domain.Customer{{ID: "c1", Name: "Ana"}}
	vehicles := []*domain.Vehicle{{ID: "v1", Brand: "Chevrolet", Model: "Onix"}}

	if got := ResolveCustomerName(customers, "c1"); got != "Ana" {
		t.Errorf("ResolveCustomerName = %q", got)
	}
	if got := ResolveCustomerName(customers, "ghost"); got != CustomerNotFound {
		t.Errorf("expected placeholder, got %q", got)
	}
	if got := ResolveVehicleName(vehicles, "v1"); got != "Chevrolet Onix" {
		t.Errorf("ResolveVehicleName = %q", got)
	}
	if got := ResolveVehicleName(vehicles, "ghost"); got != VehicleNotFound {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestTransactionDescription(t *testing.T) {
	rentals := []*domain.Rental{{ID: "abc123456789", CustomerID: "c1"}}
	customers := []*domain.Customer{{ID: "c1", Name: "Ana"}}

	p := &domain.Payment{RentalID: "abc123456789", Type: domain.PaymentTypeRentalPayment}
	if got := TransactionDescription(p, rentals, customers); got != "Rental LOC-23456789 (Ana)" {
		t.Errorf("TransactionDescription = %q", got)
	}

	// A dangling booking reference still renders the code, with a
	// placeholder for the customer.
	dangling := &domain.Payment{RentalID: "gone12345678", Type: domain.PaymentTypeRentalPayment}
	if got := TransactionDescription(dangling, rentals, customers); got != "Rental LOC-12345678 ("+CustomerNotFound+")" {
		t.Errorf("TransactionDescription = %q", got)
	}

	manual := &domain.Payment{Type: domain.PaymentTypeFine}
	if got := TransactionDescription(manual, rentals, customers); got != "Fine" {
		t.Errorf("TransactionDescription = %q", got)
	}
}
