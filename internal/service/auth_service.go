package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sipm-be-svc/internal/models"
	"sipm-be-svc/internal/models/response"
	"sipm-be-svc/pkg/logger"
)

// AuthService issues and parses session tokens. Login performs no
// credential check: any username/password pair yields a fabricated
// session user labeled with the requested role.
type AuthService interface {
	Login(username, password string, role models.UserRole) (*response.LoginResponse, error)
	ParseToken(tokenString string) (*models.User, error)
}

// sessionClaims carries the fabricated user inside the token
type sessionClaims struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	FullName string          `json:"fullName"`
	jwt.RegisteredClaims
}

// authService implements AuthService
type authService struct {
	secret []byte
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, logger *logger.Logger) AuthService {
	return &authService{
		secret: []byte(secret),
		logger: logger,
	}
}

// Login fabricates a session user and signs a 24-hour bearer token for it
func (s *authService) Login(username, password string, role models.UserRole) (*response.LoginResponse, error) {
	if username == "" {
		return nil, newValidationError("username", "Username wajib diisi.")
	}
	if password == "" {
		return nil, newValidationError("password", "Password wajib diisi.")
	}
	if !role.IsValid() {
		return nil, newValidationError("role", "Role tidak dikenal.")
	}

	fullName := "District Officer"
	if role == models.RoleAdmin {
		fullName = "Chief Administrator"
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Role:     role,
		FullName: fullName,
	}

	now := time.Now()
	claims := sessionClaims{
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign session token")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"username": user.Username,
		"role":     string(user.Role),
	}).Info("User logged in")

	return &response.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// ParseToken validates a bearer token and reconstructs the session user
func (s *authService) ParseToken(tokenString string) (*models.User, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return &models.User{
		ID:       claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
		FullName: claims.FullName,
	}, nil
}
