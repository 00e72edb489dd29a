package services_test

import (
	"context"
	"testing"

	"sneakerverse/internal/models"
	"sneakerverse/internal/repositories"
	"sneakerverse/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, category string) ([]models.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: primitive.NewObjectID(), Name: "Shoe", Price: 49.99, Category: "Running"},
	}

	// A category filter is passed through to the repository
	mockRepo.On("GetAll", mock.Anything, "running").Return(expected, nil).Once()
	products, err := service.GetAllProducts(context.Background(), "running")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)

	// "all" (any case) means no filter
	mockRepo.On("GetAll", mock.Anything, "").Return(expected, nil).Once()
	_, err = service.GetAllProducts(context.Background(), "All")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Absent category also means no filter
	mockRepo.On("GetAll", mock.Anything, "").Return(expected, nil).Once()
	_, err = service.GetAllProducts(context.Background(), "")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	id := primitive.NewObjectID()
	expected := &models.Product{ID: id, Name: "Shoe", Price: 49.99, Category: "Running"}

	mockRepo.On("GetByID", mock.Anything, id).Return(expected, nil).Once()
	product, err := service.GetProductByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	unknown := primitive.NewObjectID()
	mockRepo.On("GetByID", mock.Anything, unknown).Return(nil, repositories.ErrNotFound).Once()
	_, err = service.GetProductByID(context.Background(), unknown)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	id := primitive.NewObjectID()
	fields := bson.M{"price": 59.99}

	mockRepo.On("Update", mock.Anything, id, fields).Return(nil).Once()
	assert.NoError(t, service.UpdateProduct(context.Background(), id, fields))
	mockRepo.AssertExpectations(t)

	unknown := primitive.NewObjectID()
	mockRepo.On("Update", mock.Anything, unknown, fields).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.UpdateProduct(context.Background(), unknown, fields), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
