package handlers

import (
	"errors"

	"sneakerverse/internal/models"
	"sneakerverse/internal/repositories"
	"sneakerverse/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler handles HTTP requests for the Orders collection.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetOrders)
	router.Get("/orders/:id", h.HandleGetOrderByID)
	router.Post("/orders", h.HandleCreateOrder)
	router.Put("/orders/:id", h.HandleUpdateOrder)
	router.Delete("/orders/:id", h.HandleDeleteOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch orders")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch orders",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Orders fetched successfully",
		"data":    orders,
	})
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch order",
		})
	}

	order, err := h.service.GetOrderByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to fetch order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch order",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": order,
	})
}

// HandleCreateOrder creates a new order. Items are stored verbatim and
// the total amount accepts either a JSON number or a numeric string.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req struct {
		UserID      string      `json:"userId"`
		Items       interface{} `json:"items"`
		TotalAmount interface{} `json:"totalAmount"`
		Status      string      `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.UserID == "" || req.Items == nil || req.TotalAmount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId, items, and totalAmount required",
		})
	}

	totalAmount, err := cast.ToFloat64E(req.TotalAmount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId, items, and totalAmount required",
		})
	}

	order := &models.Order{
		UserID:      req.UserID,
		Items:       req.Items,
		TotalAmount: totalAmount,
		Status:      req.Status,
	}
	id, err := h.service.CreateOrder(c.Context(), order)
	if err != nil {
		log.Error().Err(err).Msg("failed to create order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created",
		"id":      id,
	})
}

// HandleUpdateOrder merges arbitrary body fields into an existing order.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	fields := bson.M{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.UpdateOrder(c.Context(), id, fields); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to update order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Order updated",
	})
}

// HandleDeleteOrder deletes an order by its ID.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order",
		})
	}

	if err := h.service.DeleteOrder(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to delete order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete order",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Order deleted",
	})
}
