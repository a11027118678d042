package domain

// PickupLocation represents a branch where vehicles are handed over.
type PickupLocation struct {
	ID           string
	Name         string
	Address      string
	City         string
	State        string
	Active       bool
	DisplayOrder int // lower sorts first
	Notes        string
}

// PickupLocationUpdate is a typed partial update. Nil fields are left untouched.
type PickupLocationUpdate struct {
	Name         *string
	Address      *string
	City         *string
	State        *string
	Active       *bool
	DisplayOrder *int
	Notes        *string
}
