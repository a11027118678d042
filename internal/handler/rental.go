package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/export"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// RentalHandler handles HTTP requests for bookings.
type RentalHandler struct {
	rentalService   *service.RentalService
	customerService *service.CustomerService
	vehicleService  *service.VehicleService
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(rentalService *service.RentalService, customerService *service.CustomerService, vehicleService *service.VehicleService) *RentalHandler {
	return &RentalHandler{
		rentalService:   rentalService,
		customerService: customerService,
		vehicleService:  vehicleService,
	}
}

// parseDate accepts a bare date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateRentalRequest is the HTTP request body for creating a booking.
type CreateRentalRequest struct {
	CustomerID       string `json:"customer_id"`
	VehicleID        string `json:"vehicle_id"`
	PickupDate       string `json:"pickup_date"`
	ReturnDate       string `json:"return_date"`
	PickupLocationID string `json:"pickup_location_id,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// UpdateRentalRequest is the HTTP request body for a partial booking update.
// Absent fields are left untouched.
type UpdateRentalRequest struct {
	PickupDate       *string  `json:"pickup_date"`
	ReturnDate       *string  `json:"return_date"`
	PickupLocationID *string  `json:"pickup_location_id"`
	TotalAmount      *float64 `json:"total_amount"`
	Notes            *string  `json:"notes"`
}

// UpdateRentalStatusRequest is the HTTP request body for a booking lifecycle change.
type UpdateRentalStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRentalPaymentStatusRequest is the HTTP request body for a payment-status change.
type UpdateRentalPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// RentalResponse is the HTTP representation of a booking.
type RentalResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	CustomerID       string  `json:"customer_id"`
	VehicleID        string  `json:"vehicle_id"`
	PickupDate       string  `json:"pickup_date"`
	ReturnDate       string  `json:"return_date"`
	PickupLocationID string  `json:"pickup_location_id,omitempty"`
	Days             int     `json:"days"`
	Status           string  `json:"status"`
	TotalAmount      float64 `json:"total_amount"`
	PaymentStatus    string  `json:"payment_status"`
	Notes            string  `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
}

// RentalPaymentStatusResponse reports a payment-status change, including
// whether the autogenerated ledger entry was written.
type RentalPaymentStatusResponse struct {
	Rental         RentalResponse `json:"rental"`
	PaymentCreated bool           `json:"payment_created"`
	PaymentFailed  bool           `json:"payment_failed"`
}

func toRentalResponse(r *domain.Rental) RentalResponse {
	resp := RentalResponse{
		ID:               r.ID,
		Code:             r.Code(),
		CustomerID:       r.CustomerID,
		VehicleID:        r.VehicleID,
		PickupDate:       r.PickupDate.Format(time.RFC3339),
		ReturnDate:       r.ReturnDate.Format(time.RFC3339),
		PickupLocationID: r.PickupLocationID,
		Days:             r.Days(),
		Status:           string(r.Status),
		TotalAmount:      r.TotalAmount,
		PaymentStatus:    string(r.PaymentStatus),
		Notes:            r.Notes,
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// GetAll handles GET /v1/rentals
func (h *RentalHandler) GetAll(c *gin.Context) {
	rentals, err := h.rentalService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		response = append(response, toRentalResponse(r))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/rentals/:id
func (h *RentalHandler) Get(c *gin.Context) {
	rental, err := h.rentalService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rental == nil {
		respondNotFound(c)
		return
	}
	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// Create handles POST /v1/rentals
func (h *RentalHandler) Create(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	pickup, ok := parseDate(req.PickupDate)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pickup_date"})
		return
	}
	returnDate, ok := parseDate(req.ReturnDate)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid return_date"})
		return
	}

	rental, err := h.rentalService.Create(c.Request.Context(), service.CreateRentalRequest{
		CustomerID:       req.CustomerID,
		VehicleID:        req.VehicleID,
		PickupDate:       pickup,
		ReturnDate:       returnDate,
		PickupLocationID: req.PickupLocationID,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toRentalResponse(rental))
}

// Update handles PATCH /v1/rentals/:id
func (h *RentalHandler) Update(c *gin.Context) {
	var req UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	upd := domain.RentalUpdate{
		PickupLocationID: req.PickupLocationID,
		TotalAmount:      req.TotalAmount,
		Notes:            req.Notes,
	}
	if req.PickupDate != nil {
		pickup, ok := parseDate(*req.PickupDate)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pickup_date"})
			return
		}
		upd.PickupDate = &pickup
	}
	if req.ReturnDate != nil {
		returnDate, ok := parseDate(*req.ReturnDate)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid return_date"})
			return
		}
		upd.ReturnDate = &returnDate
	}

	rental, err := h.rentalService.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// UpdateStatus handles PUT /v1/rentals/:id/status
func (h *RentalHandler) UpdateStatus(c *gin.Context) {
	var req UpdateRentalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentalService.UpdateStatus(c.Request.Context(), c.Param("id"), domain.RentalStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// UpdatePaymentStatus handles PUT /v1/rentals/:id/payment-status
func (h *RentalHandler) UpdatePaymentStatus(c *gin.Context) {
	var req UpdateRentalPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.rentalService.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), domain.RentalPaymentStatus(req.PaymentStatus))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, RentalPaymentStatusResponse{
		Rental:         toRentalResponse(res.Rental),
		PaymentCreated: res.PaymentCreated,
		PaymentFailed:  res.PaymentFailed,
	})
}

// Delete handles DELETE /v1/rentals/:id
func (h *RentalHandler) Delete(c *gin.Context) {
	if err := h.rentalService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /v1/rentals/export
func (h *RentalHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	rentals, err := h.rentalService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	customers, err := h.customerService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	vehicles, err := h.vehicleService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.Filename("rentals", time.Now()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.Rentals(rentals, customers, vehicles)))
}
