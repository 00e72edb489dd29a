package services

import (
	"context"

	"sneakerverse/internal/models"
	"sneakerverse/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService handles business logic related to cart items.
type CartService struct {
	repo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{
		repo: repo,
	}
}

// GetAllItems retrieves all cart items.
func (s *CartService) GetAllItems(ctx context.Context) ([]models.CartItem, error) {
	return s.repo.GetAll(ctx)
}

// GetItemByID retrieves a single cart item by its ID.
func (s *CartService) GetItemByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	return s.repo.GetByID(ctx, id)
}

// AddItem adds an item to the cart and returns its ID. The product and
// user references are stored as-is, without an existence check.
func (s *CartService) AddItem(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	return s.repo.Create(ctx, item)
}

// UpdateItem merges the given fields into an existing cart item.
func (s *CartService) UpdateItem(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return s.repo.Update(ctx, id, fields)
}

// DeleteItem deletes a cart item by its ID.
func (s *CartService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
