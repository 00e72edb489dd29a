package services

import (
	"context"
	"strings"

	"sneakerverse/internal/models"
	"sneakerverse/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

// GetUserByID retrieves a single user by its ID.
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateUser creates a user through the admin-style endpoint. Unlike
// signup there are no password rules and no uniqueness check; the email
// is still lowercased for storage.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (primitive.ObjectID, error) {
	user := &models.User{
		Name:     name,
		Email:    strings.ToLower(email),
		Password: password,
	}
	return s.repo.Create(ctx, user)
}

// UpdateUser merges the given fields into an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return s.repo.Update(ctx, id, fields)
}

// DeleteUser deletes a user by its ID.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
