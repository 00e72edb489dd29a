package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"sneakerverse/internal/models"
	"sneakerverse/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrEmailTaken is returned by Signup when the normalized email
	// already belongs to an existing user.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Signin for both unknown
	// emails and wrong passwords, so the response never reveals which
	// part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles signup and signin against the Users collection.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// encodePassword applies the store's reversible password encoding.
// Existing records hold base64 text rather than a salted hash, and
// signin matches by encoded equality, so the encoding must stay
// byte-compatible with them. Known defect, tracked in DESIGN.md.
func encodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// Signup registers a new user and returns the generated ID. The email
// is lowercased before the uniqueness lookup and before storage. The
// existence check and the insert are two separate calls; concurrent
// signups with the same email can race.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (primitive.ObjectID, error) {
	normalized := strings.ToLower(email)

	existing, err := s.userRepo.GetByEmail(ctx, normalized)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return primitive.NilObjectID, fmt.Errorf("failed to check email %s: %w", normalized, err)
	}
	if existing != nil {
		return primitive.NilObjectID, ErrEmailTaken
	}

	user := &models.User{
		Name:     name,
		Email:    normalized,
		Password: encodePassword(password),
	}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to register user: %w", err)
	}
	return id, nil
}

// Signin verifies the credentials and returns the matching user.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Password != encodePassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
