package repositories

import (
	"context"
	"sync"
	"time"

	"sneakerverse/internal/models"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[primitive.ObjectID]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[primitive.ObjectID]models.User),
	}
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		userList = append(userList, u)
	}
	return userList, nil
}

// GetByID returns a user by its ID.
func (r *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// Create adds a new user and returns the generated ID.
func (r *MockUserRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return user.ID, nil
}

// Update merges known fields into an existing user.
func (r *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			user.Name = cast.ToString(v)
		case "email":
			user.Email = cast.ToString(v)
		case "password":
			user.Password = cast.ToString(v)
		}
	}
	user.UpdatedAt = time.Now()
	r.users[id] = user
	return nil
}

// Delete removes a user by its ID.
func (r *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}
