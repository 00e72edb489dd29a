package repositories

import (
	"context"

	"sneakerverse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
