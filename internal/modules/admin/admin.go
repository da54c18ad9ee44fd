package admin

import "github.com/google/uuid"

// Admin is a staff account. Admins are created out of band, never over HTTP.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
}

// CreateRequest holds the fields for a new admin account.
type CreateRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Decision is the outcome of an admin review.
type Decision struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}
