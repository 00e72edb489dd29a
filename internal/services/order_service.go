package services

import (
	"context"

	"sneakerverse/internal/models"
	"sneakerverse/internal/repositories"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderEventPublisher publishes order lifecycle events to a message
// broker. A nil publisher disables event publication.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo      repositories.OrderRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateOrder creates a new order and returns its ID. The status
// defaults to "pending" when not supplied. When a publisher is
// configured an order.created event is emitted; publish failures are
// logged and never fail the order itself.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	if order.Status == "" {
		order.Status = "pending"
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderId":     id.Hex(),
			"userId":      order.UserID,
			"status":      order.Status,
			"totalAmount": order.TotalAmount,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Warn().Err(err).Str("orderId", id.Hex()).Msg("failed to publish order created event")
		}
	}

	return id, nil
}

// UpdateOrder merges the given fields into an existing order.
func (s *OrderService) UpdateOrder(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return s.repo.Update(ctx, id, fields)
}

// DeleteOrder deletes an order by its ID.
func (s *OrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
