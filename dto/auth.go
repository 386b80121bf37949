package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest represents the admin login form
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenClaims represents the JWT claims for an authenticated reviewer
type TokenClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthResponse represents a successful authentication result
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
