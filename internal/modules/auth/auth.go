package auth

import (
	"context"

	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login checks the credentials and returns a signed token and the user.
	Login(ctx context.Context, email, password string) (string, *user.User, error)
}
