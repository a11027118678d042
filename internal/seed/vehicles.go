// Package seed carries the built-in demo fleet. It is served when the remote
// store has no vehicle rows at all, so a freshly provisioned backend never
// renders an empty fleet.
package seed

import "github.com/raphaestudos2/locadoradestino/internal/domain"

// Vehicles returns a fresh copy of the seed catalog. Callers may mutate the
// result freely.
func Vehicles() []*domain.Vehicle {
	catalog := []domain.Vehicle{
		{
			ID:           "seed-onix",
			Brand:        "Chevrolet",
			Model:        "Onix",
			Year:         2023,
			LicensePlate: "BRA2E19",
			Category:     domain.CategoryHatch,
			Transmission: domain.TransmissionManual,
			FuelType:     domain.FuelFlex,
			Seats:        5,
			DailyPrice:   129.90,
			Features:     []string{"Ar-condicionado", "Direção elétrica", "Bluetooth"},
			Images:       []string{"/img/fleet/onix.jpg"},
			Mileage:      28500,
			Available:    true,
			Stock:        3,
		},
		{
			ID:           "seed-corolla",
			Brand:        "Toyota",
			Model:        "Corolla XEi",
			Year:         2024,
			LicensePlate: "SDN4F21",
			Category:     domain.CategorySedan,
			Transmission: domain.TransmissionCVT,
			FuelType:     domain.FuelHybrid,
			Seats:        5,
			DailyPrice:   289.90,
			Features:     []string{"Central multimídia", "Câmera de ré", "ACC"},
			Images:       []string{"/img/fleet/corolla.jpg", "/img/fleet/corolla-int.jpg"},
			Mileage:      12300,
			Available:    true,
			Stock:        2,
		},
		{
			ID:           "seed-compass",
			Brand:        "Jeep",
			Model:        "Compass Longitude",
			Year:         2023,
			LicensePlate: "SUV7G33",
			Category:     domain.CategorySUV,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelDiesel,
			Seats:        5,
			DailyPrice:   349.90,
			Features:     []string{"Teto solar", "Tração 4x4", "Keyless"},
			Images:       []string{"/img/fleet/compass.jpg"},
			Mileage:      41200,
			Available:    true,
			Stock:        2,
		},
		{
			ID:           "seed-hilux",
			Brand:        "Toyota",
			Model:        "Hilux SRX",
			Year:         2022,
			LicensePlate: "PKP9H44",
			Category:     domain.CategoryPickup,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelDiesel,
			Seats:        5,
			DailyPrice:   399.90,
			Features:     []string{"Caçamba com capota", "Tração 4x4"},
			Images:       []string{"/img/fleet/hilux.jpg"},
			Mileage:      55800,
			Available:    true,
			Stock:        1,
		},
		{
			ID:           "seed-spin",
			Brand:        "Chevrolet",
			Model:        "Spin LTZ",
			Year:         2023,
			LicensePlate: "VAN1J55",
			Category:     domain.CategoryVan,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelFlex,
			Seats:        7,
			DailyPrice:   219.90,
			Features:     []string{"7 lugares", "Porta-malas amplo"},
			Images:       []string{"/img/fleet/spin.jpg"},
			Mileage:      33100,
			Available:    true,
			Stock:        2,
		},
		{
			ID:           "seed-corolla-blindado",
			Name:         "Corolla Blindado Executivo",
			Brand:        "Toyota",
			Model:        "Corolla Altis",
			Year:         2024,
			LicensePlate: "BLD3K66",
			Category:     domain.CategoryArmored,
			Transmission: domain.TransmissionCVT,
			FuelType:     domain.FuelHybrid,
			Seats:        5,
			DailyPrice:   649.90,
			Features:     []string{"Blindagem nível III-A", "Vidros blindados", "Bancos de couro"},
			Images:       []string{"/img/fleet/corolla-blindado.jpg"},
			Mileage:      8900,
			Available:    true,
			Stock:        1,
		},
	}

	out := make([]*domain.Vehicle, len(catalog))
	for i := range catalog {
		v := catalog[i]
		out[i] = &v
	}
	return out
}
