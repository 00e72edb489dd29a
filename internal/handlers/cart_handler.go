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

// CartHandler handles HTTP requests for the Cart collection.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/cart", h.HandleGetCart)
	router.Get("/cart/:id", h.HandleGetCartItemByID)
	router.Post("/cart", h.HandleAddCartItem)
	router.Put("/cart/:id", h.HandleUpdateCartItem)
	router.Delete("/cart/:id", h.HandleDeleteCartItem)
}

// HandleGetCart retrieves all cart items.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch cart")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cart",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Cart fetched successfully",
		"data":    items,
	})
}

// HandleGetCartItemByID retrieves a single cart item by its ID.
func (h *CartHandler) HandleGetCartItemByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cart item",
		})
	}

	item, err := h.service.GetItemByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Cart item not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to fetch cart item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cart item",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": item,
	})
}

// HandleAddCartItem adds an item to the cart. The quantity accepts
// either a JSON number or a numeric string.
func (h *CartHandler) HandleAddCartItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string      `json:"productId"`
		Quantity  interface{} `json:"quantity"`
		UserID    string      `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ProductID == "" || req.Quantity == nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "productId, quantity, and userId required",
		})
	}

	quantity, err := cast.ToIntE(req.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "productId, quantity, and userId required",
		})
	}

	item := &models.CartItem{
		ProductID: req.ProductID,
		Quantity:  quantity,
		UserID:    req.UserID,
	}
	id, err := h.service.AddItem(c.Context(), item)
	if err != nil {
		log.Error().Err(err).Msg("failed to add cart item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add cart item",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item added to cart",
		"id":      id,
	})
}

// HandleUpdateCartItem merges arbitrary body fields into an existing
// cart item.
func (h *CartHandler) HandleUpdateCartItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update cart item",
		})
	}

	fields := bson.M{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.UpdateItem(c.Context(), id, fields); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Cart item not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to update cart item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update cart item",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Cart item updated",
	})
}

// HandleDeleteCartItem deletes a cart item by its ID.
func (h *CartHandler) HandleDeleteCartItem(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete cart item",
		})
	}

	if err := h.service.DeleteItem(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Cart item not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to delete cart item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete cart item",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Cart item deleted",
	})
}
