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

// MongoOrderRepository is a MongoDB implementation of OrderRepository
// backed by the "Orders" collection.
type MongoOrderRepository struct {
	col *mongo.Collection
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		col: db.Collection("Orders"),
	}
}

// GetAll retrieves all orders from the database.
func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID from the database.
func (r *MongoOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id.Hex(), err)
	}
	return &order, nil
}

// Create inserts a new order and returns the generated ID.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = time.Now()
	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create order: %w", err)
	}
	return order.ID, nil
}

// Update merges the given fields into the order document and stamps
// updatedAt. Returns ErrNotFound when no document matches.
func (r *MongoOrderRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = time.Now()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an order by its ID.
func (r *MongoOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
