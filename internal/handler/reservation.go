package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/service"
	"github.com/raphaestudos2/locadoradestino/internal/whatsapp"
)

// ReservationHandler serves the public reservation flow: visitors browse the
// catalog, submit a request, and get handed off to WhatsApp. No auth.
type ReservationHandler struct {
	rentalService       *service.RentalService
	customerService     *service.CustomerService
	vehicleService      *service.VehicleService
	locationService     *service.LocationService
	notificationService *service.NotificationService

	// companyPhone receives the wa.me conversations.
	companyPhone string
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(
	rentalService *service.RentalService,
	customerService *service.CustomerService,
	vehicleService *service.VehicleService,
	locationService *service.LocationService,
	notificationService *service.NotificationService,
	companyPhone string,
) *ReservationHandler {
	return &ReservationHandler{
		rentalService:       rentalService,
		customerService:     customerService,
		vehicleService:      vehicleService,
		locationService:     locationService,
		notificationService: notificationService,
		companyPhone:        companyPhone,
	}
}

// ReservationRequest is the HTTP request body for a public reservation.
type ReservationRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	VehicleID        string `json:"vehicle_id"`
	PickupDate       string `json:"pickup_date"`
	ReturnDate       string `json:"return_date"`
	PickupLocationID string `json:"pickup_location_id,omitempty"`
}

// ReservationResponse carries the created booking and the WhatsApp handoff
// link the visitor is redirected to.
type ReservationResponse struct {
	Rental       RentalResponse `json:"rental"`
	WhatsAppLink string         `json:"whatsapp_link"`
}

// ListVehicles handles GET /v1/reservations/vehicles
func (h *ReservationHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.Available {
			continue
		}
		response = append(response, toVehicleResponse(v))
	}
	respondJSON(c, http.StatusOK, response)
}

// ListLocations handles GET /v1/reservations/locations
func (h *ReservationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationService.GetActive(c.Request.Context())
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

// Create handles POST /v1/reservations. The visitor becomes a customer
// record (matched by email when one exists), the booking starts out pending,
// and the response carries the prefilled WhatsApp link.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
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

	ctx := c.Request.Context()
	vehicle, err := h.vehicleService.GetByID(ctx, req.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	if vehicle == nil {
		respondNotFound(c)
		return
	}

	customer, err := h.findOrCreateCustomer(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	rental, err := h.rentalService.Create(ctx, service.CreateRentalRequest{
		CustomerID:       customer.ID,
		VehicleID:        req.VehicleID,
		PickupDate:       pickup,
		ReturnDate:       returnDate,
		PickupLocationID: req.PickupLocationID,
		Notes:            "Reserva pelo site",
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.notificationService.NotifyReservationReceived(ctx, rental, customer.Name)

	var location *domain.PickupLocation
	if req.PickupLocationID != "" {
		location, _ = h.locationService.GetByID(ctx, req.PickupLocationID)
	}
	message := whatsapp.ReservationMessage(customer.Name, vehicle, location, pickup, returnDate)

	respondJSON(c, http.StatusCreated, ReservationResponse{
		Rental:       toRentalResponse(rental),
		WhatsAppLink: whatsapp.Link(h.companyPhone, message),
	})
}

func (h *ReservationHandler) findOrCreateCustomer(c *gin.Context, req *ReservationRequest) (*domain.Customer, error) {
	ctx := c.Request.Context()
	if req.Email != "" {
		customer, err := h.customerService.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			return customer, nil
		}
	}
	return h.customerService.Create(ctx, &domain.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
}
