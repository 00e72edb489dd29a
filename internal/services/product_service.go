package services

import (
	"context"
	"strings"

	"sneakerverse/internal/models"
	"sneakerverse/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves products, optionally filtered by category.
// A category of "all" (any case) or an empty string means no filter.
func (s *ProductService) GetAllProducts(ctx context.Context, category string) ([]models.Product, error) {
	if strings.EqualFold(category, "all") {
		category = ""
	}
	return s.repo.GetAll(ctx, category)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct creates a new product and returns its ID.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	return s.repo.Create(ctx, product)
}

// UpdateProduct merges the given fields into an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return s.repo.Update(ctx, id, fields)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
