package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of operator access tokens.
type Claims struct {
	OperatorID int64  `json:"oid"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// TokenValidator validates access tokens issued by the district auth module.
// Issuing tokens is outside this service.
type TokenValidator interface {
	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

// PermissionChecker resolves whether a role may open a feature.
type PermissionChecker interface {
	// HasPermission reports whether the role grants the feature.
	HasPermission(role string, feature string) bool
}
