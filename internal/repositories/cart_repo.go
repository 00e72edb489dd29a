package repositories

import (
	"context"

	"sneakerverse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartRepository defines the interface for cart item data access.
type CartRepository interface {
	GetAll(ctx context.Context) ([]models.CartItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
