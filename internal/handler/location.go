package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// LocationHandler handles HTTP requests for pickup locations.
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// LocationRequest is the HTTP request body for creating a pickup location.
type LocationRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"display_order"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateLocationRequest is the HTTP request body for a partial pickup
// location update. Absent fields are left untouched.
type UpdateLocationRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Active       *bool   `json:"active"`
	DisplayOrder *int    `json:"display_order"`
	Notes        *string `json:"notes"`
}

// LocationResponse is the HTTP representation of a pickup location.
type LocationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"display_order"`
	Notes        string `json:"notes,omitempty"`
}

func toLocationResponse(l *domain.PickupLocation) LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		Name:         l.Name,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		Active:       l.Active,
		DisplayOrder: l.DisplayOrder,
		Notes:        l.Notes,
	}
}

// GetAll handles GET /v1/locations
func (h *LocationHandler) GetAll(c *gin.Context) {
	locations, err := h.locationService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		response = append(response, toLocationResponse(l))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	location, err := h.locationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if location == nil {
		respondNotFound(c)
		return
	}
	respondJSON(c, http.StatusOK, toLocationResponse(location))
}

// Create handles POST /v1/locations
func (h *LocationHandler) Create(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), &domain.PickupLocation{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Active:       req.Active,
		DisplayOrder: req.DisplayOrder,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toLocationResponse(location))
}

// Update handles PATCH /v1/locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	location, err := h.locationService.Update(c.Request.Context(), c.Param("id"), domain.PickupLocationUpdate{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Active:       req.Active,
		DisplayOrder: req.DisplayOrder,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toLocationResponse(location))
}

// Delete handles DELETE /v1/locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.locationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
