package auth

import (
	"errors"
	"fmt"
	"time"

	"reservations-backend/internal/database/models"
	apperrors "reservations-backend/internal/errors"
	"reservations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService provides username/password authentication and JWT issuance
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, validator *validator.Validate, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		validator: validator,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id" example:"7f9c24e8-3b4a-4b8a-9c1d-2e5f6a7b8c9d"`
	UserName string    `json:"user_name" example:"johndoe"`
	Email    string    `json:"email" example:"john.doe@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"86400"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      string    `json:"created_at"`
}

// Register creates a new user with a bcrypt-hashed password. The email is
// confirmed immediately; no confirmation message is sent.
func (s *AuthService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.userRepo.GetByUserName(req.UserName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserNameExists
	}

	existing, err = s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserName:       req.UserName,
		Email:          req.Email,
		Name:           req.Name,
		PasswordHash:   string(hash),
		EmailConfirmed: true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// Login verifies credentials and returns a bearer token. The failure path is
// intentionally vague to avoid user enumeration.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUserName(req.UserName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// GetProfile retrieves the profile of the given user
func (s *AuthService) GetProfile(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GenerateJWT creates a signed token for the user. Each token carries a
// random jti so two logins in the same second still differ.
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "reservations-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// toResponse converts a user model to API response
func (s *AuthService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		UserName:       user.UserName,
		Email:          user.Email,
		Name:           user.Name,
		EmailConfirmed: user.EmailConfirmed,
		CreatedAt:      user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
