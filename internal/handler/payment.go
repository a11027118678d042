package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/export"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// PaymentHandler handles HTTP requests for the financial ledger.
type PaymentHandler struct {
	paymentService  *service.PaymentService
	rentalService   *service.RentalService
	customerService *service.CustomerService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService, rentalService *service.RentalService, customerService *service.CustomerService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		rentalService:   rentalService,
		customerService: customerService,
	}
}

// PaymentRequest is the HTTP request body for recording a ledger entry.
type PaymentRequest struct {
	RentalID string  `json:"rental_id,omitempty"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"method,omitempty"`
	PaidAt   string  `json:"paid_at,omitempty"`
	Status   string  `json:"status,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// UpdatePaymentRequest is the HTTP request body for a partial ledger entry
// update. Absent fields are left untouched.
type UpdatePaymentRequest struct {
	RentalID *string  `json:"rental_id"`
	Type     *string  `json:"type"`
	Amount   *float64 `json:"amount"`
	Method   *string  `json:"method"`
	PaidAt   *string  `json:"paid_at"`
	Status   *string  `json:"status"`
	Notes    *string  `json:"notes"`
}

// PaymentResponse is the HTTP representation of a ledger entry.
type PaymentResponse struct {
	ID          string  `json:"id"`
	RentalID    string  `json:"rental_id,omitempty"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	PaidAt      string  `json:"paid_at"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
	Origin      string  `json:"origin"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:       p.ID,
		RentalID: p.RentalID,
		Type:     string(p.Type),
		Amount:   p.Amount,
		Method:   string(p.Method),
		PaidAt:   p.PaidAt.Format(time.RFC3339),
		Status:   string(p.Status),
		Notes:    p.Notes,
		Origin:   string(p.Origin),
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// GetAll handles GET /v1/payments. Each entry carries its synthesized
// description so the ledger screen renders without extra lookups.
func (h *PaymentHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	payments, err := h.paymentService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
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

	response := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp := toPaymentResponse(p)
		resp.Description = service.TransactionDescription(p, rentals, customers)
		response = append(response, resp)
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.paymentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if payment == nil {
		respondNotFound(c)
		return
	}
	respondJSON(c, http.StatusOK, toPaymentResponse(payment))
}

// GetByRental handles GET /v1/rentals/:id/payments
func (h *PaymentHandler) GetByRental(c *gin.Context) {
	payments, err := h.paymentService.GetByRental(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, toPaymentResponse(p))
	}
	respondJSON(c, http.StatusOK, response)
}

// Create handles POST /v1/payments. Entries recorded here are always
// manual; automatic ones only come from the paid transition.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	payment := &domain.Payment{
		RentalID: req.RentalID,
		Type:     domain.PaymentType(req.Type),
		Amount:   req.Amount,
		Method:   domain.PaymentMethod(req.Method),
		Status:   domain.PaymentStatus(req.Status),
		Notes:    req.Notes,
		Origin:   domain.OriginManual,
	}
	if req.PaidAt != "" {
		paidAt, ok := parseDate(req.PaidAt)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid paid_at"})
			return
		}
		payment.PaidAt = paidAt
	}

	created, err := h.paymentService.Create(c.Request.Context(), payment)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toPaymentResponse(created))
}

// Update handles PATCH /v1/payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	upd := domain.PaymentUpdate{
		RentalID: req.RentalID,
		Amount:   req.Amount,
		Notes:    req.Notes,
	}
	if req.Type != nil {
		paymentType := domain.PaymentType(*req.Type)
		upd.Type = &paymentType
	}
	if req.Method != nil {
		method := domain.PaymentMethod(*req.Method)
		upd.Method = &method
	}
	if req.Status != nil {
		status := domain.PaymentStatus(*req.Status)
		upd.Status = &status
	}
	if req.PaidAt != nil {
		paidAt, ok := parseDate(*req.PaidAt)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid paid_at"})
			return
		}
		upd.PaidAt = &paidAt
	}

	payment, err := h.paymentService.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toPaymentResponse(payment))
}

// Delete handles DELETE /v1/payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.paymentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /v1/payments/export
func (h *PaymentHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	payments, err := h.paymentService.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
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

	c.Header("Content-Disposition", "attachment; filename="+export.Filename("financial", time.Now()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.Financial(payments, rentals, customers)))
}
