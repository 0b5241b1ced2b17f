// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"mahalla/config"
	"mahalla/internal/domain/entity"
	"mahalla/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService validates operator access tokens signed by the district auth module.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenValidator, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the signature and expiry of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	if claims.Role == "" {
		return nil, errors.New("access token carries no role")
	}

	return claims, nil
}

// rolePermissions implements PermissionChecker from the configured role map.
type rolePermissions struct {
	roles map[string]entity.Permissions
}

// NewPermissionChecker is the constructor for rolePermissions.
func NewPermissionChecker(cfg *config.Config) service.PermissionChecker {
	roles := make(map[string]entity.Permissions)
	if cfg.Auth != nil {
		for role, features := range cfg.Auth.Roles {
			roles[strings.ToLower(role)] = entity.PermissionsFromStrings(features)
		}
	}

	return &rolePermissions{roles: roles}
}

// HasPermission reports whether the role grants the feature. Unknown roles grant nothing.
func (p *rolePermissions) HasPermission(role string, feature string) bool {
	permissions, ok := p.roles[strings.ToLower(role)]
	if !ok {
		return false
	}

	return permissions.Allows(entity.Permission(feature))
}
