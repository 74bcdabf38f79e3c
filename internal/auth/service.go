package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	internal "github.com/frahmantamala/hr-management/internal"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	Create(user *userDatamodel.User) error
}

// Service is the main auth service with dependencies
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
}

// NewService creates a new auth service
func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

// NewJWTTokenGenerator creates a new JWT token generator
func NewJWTTokenGenerator(secret string, tokenTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: tokenTTL,
	}
}

// Authenticate validates credentials and issues a session token. Lookup
// failures and hash mismatches collapse into the same error so the caller
// cannot probe which emails are registered.
func (s *Service) Authenticate(dto LoginDTO) (AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return AuthResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(normalizeEmail(dto.Email))
	if err != nil || user == nil {
		return AuthResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return AuthResponse{}, ErrInvalidCredentials
	}

	return s.issueFor(user)
}

// Signup registers a new credential. The role is always employee, no matter
// what the request body contained.
func (s *Service) Signup(dto SignupDTO) (AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return AuthResponse{}, err
	}

	email := normalizeEmail(dto.Email)

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return AuthResponse{}, internal.ErrDuplicateUserEmail
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &userDatamodel.User{
		Email:        email,
		PasswordHash: hash,
		Role:         RoleEmployee,
	}
	if err := s.userRepo.Create(user); err != nil {
		return AuthResponse{}, err
	}

	return s.issueFor(user)
}

// CreateUser creates an HR or admin credential. The admin-only check lives
// in the authorization middleware; this only validates the payload.
func (s *Service) CreateUser(dto CreateUserDTO) (*UserResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := normalizeEmail(dto.Email)

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, internal.ErrDuplicateUserEmail
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &userDatamodel.User{
		Email:        email,
		PasswordHash: hash,
		Role:         dto.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ValidateAccessToken validates a session token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (s *Service) issueFor(user *userDatamodel.User) (AuthResponse, error) {
	token, err := s.tokenGenerator.GenerateToken(fmt.Sprintf("%d", user.ID), user.Email, user.Role)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toUserResponse(u *userDatamodel.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GenerateToken creates a signed session token
func (j *JWTTokenGenerator) GenerateToken(userID, email, role string) (string, error) {
	expiresAt := time.Now().Add(j.TokenTTL)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
