package domain

import "time"

// VehicleCategory represents the commercial category of a vehicle.
type VehicleCategory string

const (
	CategorySUV     VehicleCategory = "suv"
	CategorySedan   VehicleCategory = "sedan"
	CategoryHatch   VehicleCategory = "hatch"
	CategoryPickup  VehicleCategory = "pickup"
	CategoryVan     VehicleCategory = "van"
	CategoryArmored VehicleCategory = "armored"
)

// Transmission represents the gearbox type of a vehicle.
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
)

// FuelType represents the fuel type of a vehicle.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelEthanol  FuelType = "ethanol"
	FuelFlex     FuelType = "flex"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

// Vehicle represents a rentable vehicle in the fleet.
type Vehicle struct {
	ID           string
	Name         string
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	Category     VehicleCategory
	Transmission Transmission
	FuelType     FuelType
	Seats        int
	DailyPrice   float64
	Features     []string
	Images       []string // first entry is the cover image
	Mileage      int
	Available    bool
	Stock        int
	CreatedAt    time.Time
}

// VehicleUpdate is a typed partial update. Nil fields are left untouched.
type VehicleUpdate struct {
	Name         *string
	Brand        *string
	Model        *string
	Year         *int
	LicensePlate *string
	Category     *VehicleCategory
	Transmission *Transmission
	FuelType     *FuelType
	Seats        *int
	DailyPrice   *float64
	Features     *[]string
	Images       *[]string
	Mileage      *int
	Available    *bool
	Stock        *int
}

// DisplayName returns the name shown on screens: the explicit name when
// present, otherwise brand and model joined.
func (v *Vehicle) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	if v.Brand != "" && v.Model != "" {
		return v.Brand + " " + v.Model
	}
	if v.Brand != "" {
		return v.Brand
	}
	return v.Model
}

// Validate checks the vehicle invariants: a positive daily price and a
// resolvable display name.
func (v *Vehicle) Validate() error {
	if v.DailyPrice <= 0 {
		return ErrInvalidDailyPrice
	}
	if v.DisplayName() == "" {
		return ErrVehicleNameRequired
	}
	return nil
}

// CoverImage returns the first image of the ordered list, or empty.
func (v *Vehicle) CoverImage() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[0]
}
