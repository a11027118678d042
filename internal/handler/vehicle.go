package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// VehicleHandler handles HTTP requests for the fleet.
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// VehicleRequest is the HTTP request body for creating a vehicle.
type VehicleRequest struct {
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	LicensePlate string   `json:"license_plate"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Seats        int      `json:"seats"`
	DailyPrice   float64  `json:"daily_price"`
	Features     []string `json:"features,omitempty"`
	Images       []string `json:"images,omitempty"`
	Mileage      int      `json:"mileage"`
	Available    bool     `json:"available"`
	Stock        int      `json:"stock"`
}

// UpdateVehicleRequest is the HTTP request body for a partial vehicle update.
// Absent fields are left untouched.
type UpdateVehicleRequest struct {
	Name         *string   `json:"name"`
	Brand        *string   `json:"brand"`
	Model        *string   `json:"model"`
	Year         *int      `json:"year"`
	LicensePlate *string   `json:"license_plate"`
	Category     *string   `json:"category"`
	Transmission *string   `json:"transmission"`
	FuelType     *string   `json:"fuel_type"`
	Seats        *int      `json:"seats"`
	DailyPrice   *float64  `json:"daily_price"`
	Features     *[]string `json:"features"`
	Images       *[]string `json:"images"`
	Mileage      *int      `json:"mileage"`
	Available    *bool     `json:"available"`
	Stock        *int      `json:"stock"`
}

// VehicleResponse is the HTTP representation of a vehicle.
type VehicleResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DisplayName  string   `json:"display_name"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	LicensePlate string   `json:"license_plate"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Seats        int      `json:"seats"`
	DailyPrice   float64  `json:"daily_price"`
	Features     []string `json:"features,omitempty"`
	Images       []string `json:"images,omitempty"`
	CoverImage   string   `json:"cover_image,omitempty"`
	Mileage      int      `json:"mileage"`
	Available    bool     `json:"available"`
	Stock        int      `json:"stock"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

func toVehicleResponse(v *domain.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		DisplayName:  v.DisplayName(),
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		Category:     string(v.Category),
		Transmission: string(v.Transmission),
		FuelType:     string(v.FuelType),
		Seats:        v.Seats,
		DailyPrice:   v.DailyPrice,
		Features:     v.Features,
		Images:       v.Images,
		CoverImage:   v.CoverImage(),
		Mileage:      v.Mileage,
		Available:    v.Available,
		Stock:        v.Stock,
	}
	if !v.CreatedAt.IsZero() {
		resp.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// GetAll handles GET /v1/vehicles
func (h *VehicleHandler) GetAll(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, toVehicleResponse(v))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if vehicle == nil {
		respondNotFound(c)
		return
	}
	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// Create handles POST /v1/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), &domain.Vehicle{
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Category:     domain.VehicleCategory(req.Category),
		Transmission: domain.Transmission(req.Transmission),
		FuelType:     domain.FuelType(req.FuelType),
		Seats:        req.Seats,
		DailyPrice:   req.DailyPrice,
		Features:     req.Features,
		Images:       req.Images,
		Mileage:      req.Mileage,
		Available:    req.Available,
		Stock:        req.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toVehicleResponse(vehicle))
}

// Update handles PATCH /v1/vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	upd := domain.VehicleUpdate{
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Seats:        req.Seats,
		DailyPrice:   req.DailyPrice,
		Features:     req.Features,
		Images:       req.Images,
		Mileage:      req.Mileage,
		Available:    req.Available,
		Stock:        req.Stock,
	}
	if req.Category != nil {
		category := domain.VehicleCategory(*req.Category)
		upd.Category = &category
	}
	if req.Transmission != nil {
		transmission := domain.Transmission(*req.Transmission)
		upd.Transmission = &transmission
	}
	if req.FuelType != nil {
		fuelType := domain.FuelType(*req.FuelType)
		upd.FuelType = &fuelType
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// Delete handles DELETE /v1/vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.vehicleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
