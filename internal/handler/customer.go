package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CustomerRequest is the HTTP request body for creating a customer.
type CustomerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CPF           string `json:"cpf"`
	DriverLicense string `json:"driver_license"`
	Address       string `json:"address,omitempty"`
}

// UpdateCustomerRequest is the HTTP request body for a partial customer
// update. Absent fields are left untouched.
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	CPF           *string `json:"cpf"`
	DriverLicense *string `json:"driver_license"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
}

// CustomerResponse is the HTTP representation of a customer.
type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CPF           string `json:"cpf"`
	DriverLicense string `json:"driver_license"`
	Address       string `json:"address,omitempty"`
	TotalRentals  int    `json:"total_rentals"`
	Status        string `json:"status"`
	RegisteredAt  string `json:"registered_at,omitempty"`
}

func toCustomerResponse(customer *domain.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:            customer.ID,
		Name:          customer.Name,
		Email:         customer.Email,
		Phone:         customer.Phone,
		CPF:           customer.CPF,
		DriverLicense: customer.DriverLicense,
		Address:       customer.Address,
		TotalRentals:  customer.TotalRentals,
		Status:        string(customer.Status),
	}
	if !customer.RegisteredAt.IsZero() {
		resp.RegisteredAt = customer.RegisteredAt.Format(time.RFC3339)
	}
	return resp
}

// GetAll handles GET /v1/customers
func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.customerService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		response = append(response, toCustomerResponse(customer))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if customer == nil {
		respondNotFound(c)
		return
	}
	respondJSON(c, http.StatusOK, toCustomerResponse(customer))
}

// Create handles POST /v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), &domain.Customer{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CPF:           req.CPF,
		DriverLicense: req.DriverLicense,
		Address:       req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toCustomerResponse(customer))
}

// Update handles PATCH /v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	upd := domain.CustomerUpdate{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CPF:           req.CPF,
		DriverLicense: req.DriverLicense,
		Address:       req.Address,
	}
	if req.Status != nil {
		status := domain.CustomerStatus(*req.Status)
		upd.Status = &status
	}

	customer, err := h.customerService.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
