package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// DashboardHandler serves the derived numbers behind the back-office
// dashboard and finance screens. Everything is recomputed from the loaded
// collections on each request.
type DashboardHandler struct {
	vehicleService      *service.VehicleService
	customerService     *service.CustomerService
	rentalService       *service.RentalService
	paymentService      *service.PaymentService
	notificationService *service.NotificationService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	vehicleService *service.VehicleService,
	customerService *service.CustomerService,
	rentalService *service.RentalService,
	paymentService *service.PaymentService,
	notificationService *service.NotificationService,
) *DashboardHandler {
	return &DashboardHandler{
		vehicleService:      vehicleService,
		customerService:     customerService,
		rentalService:       rentalService,
		paymentService:      paymentService,
		notificationService: notificationService,
	}
}

// DashboardResponse is the HTTP representation of the dashboard numbers.
type DashboardResponse struct {
	TotalVehicles     int     `json:"total_vehicles"`
	AvailableVehicles int     `json:"available_vehicles"`
	ActiveRentals     int     `json:"active_rentals"`
	TotalCustomers    int     `json:"total_customers"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	PendingPayments   int     `json:"pending_payments"`
}

// FinancialSummaryResponse is the HTTP representation of the ledger totals.
type FinancialSummaryResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`
	MonthRevenue float64 `json:"month_revenue"`
	MonthExpense float64 `json:"month_expense"`
	MonthNet     float64 `json:"month_net"`
}

// NotificationResponse is the HTTP representation of a toast.
type NotificationResponse struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// GetStats handles GET /v1/dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	vehicles, err := h.vehicleService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	customers, err := h.customerService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	rentals, err := h.rentalService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	payments, err := h.paymentService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	stats := service.ComputeDashboard(vehicles, customers, rentals, payments, time.Now())
	respondJSON(c, http.StatusOK, DashboardResponse{
		TotalVehicles:     stats.TotalVehicles,
		AvailableVehicles: stats.AvailableVehicles,
		ActiveRentals:     stats.ActiveRentals,
		TotalCustomers:    stats.TotalCustomers,
		MonthlyRevenue:    stats.MonthlyRevenue,
		PendingPayments:   stats.PendingPayments,
	})
}

// GetFinancialSummary handles GET /v1/finance/summary
func (h *DashboardHandler) GetFinancialSummary(c *gin.Context) {
	payments, err := h.paymentService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	summary := service.ComputeFinancialSummary(payments, time.Now())
	respondJSON(c, http.StatusOK, FinancialSummaryResponse{
		TotalRevenue: summary.TotalRevenue,
		TotalExpense: summary.TotalExpense,
		Net:          summary.Net,
		MonthRevenue: summary.MonthRevenue,
		MonthExpense: summary.MonthExpense,
		MonthNet:     summary.MonthNet,
	})
}

// GetNotifications handles GET /v1/notifications
func (h *DashboardHandler) GetNotifications(c *gin.Context) {
	notifications := h.notificationService.Recent()

	response := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, NotificationResponse{
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	respondJSON(c, http.StatusOK, response)
}
