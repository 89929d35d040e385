package services

import (
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"bloglist/internal/apperrors"
	"bloglist/internal/models"
	"bloglist/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for users, authentication and
// authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser validates a registration request, hashes the password
// and saves the new user. The checks run in a fixed order and the first
// violated rule decides the error message:
// presence, username length, password length, uniqueness.
func (s *AuthService) RegisterUser(username, name, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewValidation("password or username missing")
	}
	if utf8.RuneCountInString(username) < 3 {
		return nil, apperrors.NewValidation("username must be 3 characters or more")
	}
	if utf8.RuneCountInString(password) < 3 {
		return nil, apperrors.NewValidation("password must be 3 characters or more")
	}

	// Uniqueness is checked against current store state, not the input.
	existing, err := s.userRepo.GetByUsername(username)
	if err == nil && existing != nil {
		return nil, apperrors.NewValidation("username must be unique")
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// LoginUser authenticates a user and returns a JWT token if successful.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Do not reveal whether the username exists.
			return "", fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
		}
		// A store failure is not a credential failure and keeps its kind.
		return "", fmt.Errorf("failed to look up user for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":      time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the id of
// the user it identifies.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return "", fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", apperrors.ErrUnauthorized)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("token missing user identity: %w", apperrors.ErrUnauthorized)
	}

	// A well-signed token for a user that no longer exists is not a
	// valid credential.
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("token user no longer exists: %w", apperrors.ErrUnauthorized)
		}
		return "", fmt.Errorf("failed to look up token user: %w", err)
	}
	return userID, nil
}

// ListUsers retrieves all users with their owned blogs.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}
