package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried by credentials. Employee profiles also carry a role string,
// but that one is display-only and never consulted for authorization.
const (
	RoleEmployee = "employee"
	RoleHR       = "HR"
	RoleAdmin    = "admin"
)

// AllRoles lists the valid credential roles.
func AllRoles() []string {
	return []string{RoleEmployee, RoleHR, RoleAdmin}
}

// ElevatedRoles lists the roles an admin may assign through create-user.
func ElevatedRoles() []string {
	return []string{RoleHR, RoleAdmin}
}

// ValidRole reports whether role is one of the known credential roles.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleHR || role == RoleAdmin
}

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates session tokens.
type TokenGenerator interface {
	GenerateToken(userID, email, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
