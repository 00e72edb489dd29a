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

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[primitive.ObjectID]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[primitive.ObjectID]models.Order),
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

// Create adds a new order and returns the generated ID.
func (r *MockOrderRepository) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = time.Now()
	r.orders[order.ID] = *order
	return order.ID, nil
}

// Update merges known fields into an existing order.
func (r *MockOrderRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "userId":
			order.UserID = cast.ToString(v)
		case "items":
			order.Items = v
		case "totalAmount":
			order.TotalAmount = cast.ToFloat64(v)
		case "status":
			order.Status = cast.ToString(v)
		}
	}
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Delete removes an order by its ID.
func (r *MockOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}
