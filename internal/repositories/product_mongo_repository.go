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

// MongoProductRepository is a MongoDB implementation of ProductRepository
// backed by the "Products" collection.
type MongoProductRepository struct {
	col *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		col: db.Collection("Products"),
	}
}

// GetAll retrieves products, optionally filtered by category.
func (r *MongoProductRepository) GetAll(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = primitive.Regex{Pattern: category, Options: "i"}
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id.Hex(), err)
	}
	return &product, nil
}

// Create inserts a new product and returns the generated ID.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = time.Now()
	if _, err := r.col.InsertOne(ctx, product); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create product: %w", err)
	}
	return product.ID, nil
}

// Update merges the given fields into the product document and stamps
// updatedAt. Returns ErrNotFound when no document matches.
func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = time.Now()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by its ID.
func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
