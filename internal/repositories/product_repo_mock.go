package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"sneakerverse/internal/models"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[primitive.ObjectID]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[primitive.ObjectID]models.Product),
	}
}

// GetAll returns products, optionally filtered by category.
func (r *MockProductRepository) GetAll(ctx context.Context, category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(category)) {
			continue
		}
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Create adds a new product and returns the generated ID.
func (r *MockProductRepository) Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = time.Now()
	r.products[product.ID] = *product
	return product.ID, nil
}

// Update merges known fields into an existing product.
func (r *MockProductRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			product.Name = cast.ToString(v)
		case "price":
			product.Price = cast.ToFloat64(v)
		case "category":
			product.Category = cast.ToString(v)
		}
	}
	product.UpdatedAt = time.Now()
	r.products[id] = product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}
