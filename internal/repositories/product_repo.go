package repositories

import (
	"context"

	"sneakerverse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns products matching the category filter, or every
	// product when category is empty. The match is a case-insensitive
	// substring match.
	GetAll(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
