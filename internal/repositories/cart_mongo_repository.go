package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sneakerverse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCartRepository is a MongoDB implementation of CartRepository
// backed by the "Cart" collection.
type MongoCartRepository struct {
	col *mongo.Collection
}

// NewMongoCartRepository creates a new instance of MongoCartRepository.
func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{
		col: db.Collection("Cart"),
	}
}

// GetAll retrieves all cart items from the database.
func (r *MongoCartRepository) GetAll(ctx context.Context) ([]models.CartItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all cart items: %w", err)
	}
	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single cart item by its ID from the database.
func (r *MongoCartRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart item by ID %s: %w", id.Hex(), err)
	}
	return &item, nil
}

// Create inserts a new cart item and returns the generated ID.
func (r *MongoCartRepository) Create(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = time.Now()
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create cart item: %w", err)
	}
	return item.ID, nil
}

// Update merges the given fields into the cart item document and stamps
// updatedAt. Returns ErrNotFound when no document matches.
func (r *MongoCartRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = time.Now()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update cart item %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a cart item by its ID.
func (r *MongoCartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
