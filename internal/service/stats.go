package service

import (
	"fmt"
	"time"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// Derived-state computations. Everything in this file is pure: the screens
// reload the full collections and recompute from scratch on every render,
// so no function here may mutate its inputs or keep state.

// Placeholder strings rendered when a reference-ID lookup misses.
const (
	CustomerNotFound = "Customer not found"
	VehicleNotFound  = "Vehicle not found"
)

// DashboardStats is the front page of the back office.
type DashboardStats struct {
	TotalVehicles     int
	AvailableVehicles int
	ActiveRentals     int
	TotalCustomers    int
	MonthlyRevenue    float64
	PendingPayments   int
}

// ComputeDashboard derives the dashboard numbers from the loaded
// collections. now anchors the "this month" revenue bucket.
func ComputeDashboard(vehicles []*domain.Vehicle, customers []*domain.Customer, rentals []*domain.Rental, payments []*domain.Payment, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalVehicles:  len(vehicles),
		TotalCustomers: len(customers),
	}
	for _, v := range vehicles {
		if v.Available {
			stats.AvailableVehicles++
		}
	}
	for _, r := range rentals {
		if r.Status == domain.RentalActive {
			stats.ActiveRentals++
		}
		if r.PaymentStatus == domain.RentalPaymentPending {
			stats.PendingPayments++
		}
	}
	for _, p := range payments {
		if countsAsRevenue(p) && sameMonth(p.PaidAt, now) {
			stats.MonthlyRevenue += p.Amount
		}
	}
	return stats
}

// FinancialSummary aggregates the ledger. Revenue is every approved
// non-refund entry; expense is every approved refund. Amounts are stored
// positive, so the direction comes from the type alone.
type FinancialSummary struct {
	TotalRevenue float64
	TotalExpense float64
	Net          float64

	MonthRevenue float64
	MonthExpense float64
	MonthNet     float64
}

// ComputeFinancialSummary derives the ledger totals. now anchors the
// "this month" bucket by calendar month and year.
func ComputeFinancialSummary(payments []*domain.Payment, now time.Time) FinancialSummary {
	var summary FinancialSummary
	for _, p := range payments {
		if p.Status != domain.PaymentApproved {
			continue
		}
		thisMonth := sameMonth(p.PaidAt, now)
		if p.Type == domain.PaymentTypeRefund {
			summary.TotalExpense += p.Amount
			if thisMonth {
				summary.MonthExpense += p.Amount
			}
			continue
		}
		summary.TotalRevenue += p.Amount
		if thisMonth {
			summary.MonthRevenue += p.Amount
		}
	}
	summary.Net = summary.TotalRevenue - summary.TotalExpense
	summary.MonthNet = summary.MonthRevenue - summary.MonthExpense
	return summary
}

func countsAsRevenue(p *domain.Payment) bool {
	return p.Status == domain.PaymentApproved && p.Type != domain.PaymentTypeRefund
}

func sameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// ResolveCustomerName looks a customer up by reference equality in the
// loaded collection. A miss renders a placeholder, never an error.
func ResolveCustomerName(customers []*domain.Customer, id string) string {
	for _, c := range customers {
		if c.ID == id {
			return c.Name
		}
	}
	return CustomerNotFound
}

// ResolveVehicleName looks a vehicle up by reference equality in the
// loaded collection. A miss renders a placeholder, never an error.
func ResolveVehicleName(vehicles []*domain.Vehicle, id string) string {
	for _, v := range vehicles {
		if v.ID == id {
			return v.DisplayName()
		}
	}
	return VehicleNotFound
}

// paymentTypeLabels backs the description of ledger entries with no booking.
var paymentTypeLabels = map[domain.PaymentType]string{
	domain.PaymentTypeDeposit:       "Security deposit",
	domain.PaymentTypeRentalPayment: "Rental payment",
	domain.PaymentTypeFine:          "Fine",
	domain.PaymentTypeAdditionalFee: "Additional fee",
	domain.PaymentTypeRefund:        "Refund",
}

// TransactionDescription synthesizes the human-readable label of a ledger
// entry: booking code plus customer name when the entry references a
// rental, the type label otherwise.
func TransactionDescription(p *domain.Payment, rentals []*domain.Rental, customers []*domain.Customer) string {
	if p.RentalID != "" {
		code := (&domain.Rental{ID: p.RentalID}).Code()
		name := CustomerNotFound
		for _, r := range rentals {
			if r.ID == p.RentalID {
				name = ResolveCustomerName(customers, r.CustomerID)
				break
			}
		}
		return fmt.Sprintf("Rental %s (%s)", code, name)
	}
	if label, ok := paymentTypeLabels[p.Type]; ok {
		return label
	}
	return string(p.Type)
}
