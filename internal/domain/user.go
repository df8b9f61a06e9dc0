package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis reconhecidos pelos tokens da API
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Claims é o payload dos tokens JWT emitidos pela API
type Claims struct {
	UserEmail string `json:"user_email"`
	UserRole  string `json:"user_role"`
	jwt.RegisteredClaims
}
