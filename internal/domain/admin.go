package domain

import "time"

// AdminUser represents a back-office operator account.
type AdminUser struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
