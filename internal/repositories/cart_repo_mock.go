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

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[primitive.ObjectID]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[primitive.ObjectID]models.CartItem),
	}
}

// GetAll returns all cart items.
func (r *MockCartRepository) GetAll(ctx context.Context) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.CartItem, 0, len(r.items))
	for _, item := range r.items {
		itemList = append(itemList, item)
	}
	return itemList, nil
}

// GetByID returns a cart item by its ID.
func (r *MockCartRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// Create adds a new cart item and returns the generated ID.
func (r *MockCartRepository) Create(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = time.Now()
	r.items[item.ID] = *item
	return item.ID, nil
}

// Update merges known fields into an existing cart item.
func (r *MockCartRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "productId":
			item.ProductID = cast.ToString(v)
		case "quantity":
			item.Quantity = cast.ToInt(v)
		case "userId":
			item.UserID = cast.ToString(v)
		}
	}
	item.UpdatedAt = time.Now()
	r.items[id] = item
	return nil
}

// Delete removes a cart item by its ID.
func (r *MockCartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
