package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Helper methods for role checking
func (c *CustomClaims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c *CustomClaims) IsVenueOwner() bool {
	return c.Role == "venueOwner"
}

func (c *CustomClaims) HasRole(role string) bool {
	return c.Role == role
}

func (c *CustomClaims) IsOwner(userID string) bool {
	return c.Subject == userID
}

func (c *CustomClaims) UserID() string {
	return c.Subject
}

func (c *CustomClaims) GetSafeRole() string {
	if c.Role == "" {
		return "guest"
	}
	return c.Role
}
