package user

import (
	"time"

	"github.com/google/uuid"
)

// Account review states. Admins move a pending user to accepted, refused or banned.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRefused  = "refused"
	StatusBanned   = "banned"
)

// User is a customer account. PasswordHash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	IsAdmin      bool      `json:"isAdmin"`
	Street       string    `json:"street,omitempty"`
	Apartment    string    `json:"apartment,omitempty"`
	Zip          string    `json:"zip,omitempty"`
	City         string    `json:"city,omitempty"`
	MedicalCode  string    `json:"medicalCode,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest is the payload for POST /users and POST /users/register.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	IsAdmin     bool   `json:"isAdmin"`
	Street      string `json:"street"`
	Apartment   string `json:"apartment"`
	Zip         string `json:"zip"`
	City        string `json:"city"`
	MedicalCode string `json:"medicalCode"`
}

// UpdateRequest changes only the fields that are present.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Phone       *string `json:"phone"`
	IsAdmin     *bool   `json:"isAdmin"`
	Street      *string `json:"street"`
	Apartment   *string `json:"apartment"`
	Zip         *string `json:"zip"`
	City        *string `json:"city"`
	MedicalCode *string `json:"medicalCode"`
}

// LoginRequest is the payload for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
