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

// ProductHandler handles HTTP requests for the Products collection.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products, optionally filtered by the
// category query parameter (case-insensitive, "all" means no filter).
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	products, err := h.service.GetAllProducts(c.Context(), category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to fetch products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch products",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Products fetched successfully",
		"data":    products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch product",
		})
	}

	product, err := h.service.GetProductByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to fetch product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch product",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": product,
	})
}

// HandleCreateProduct creates a new product. The price accepts either a
// JSON number or a numeric string.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name     string      `json:"name"`
		Price    interface{} `json:"price"`
		Category string      `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.Price == nil || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name, price, and category required",
		})
	}

	price, err := cast.ToFloat64E(req.Price)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name, price, and category required",
		})
	}

	product := &models.Product{
		Name:     req.Name,
		Price:    price,
		Category: req.Category,
	}
	id, err := h.service.CreateProduct(c.Context(), product)
	if err != nil {
		log.Error().Err(err).Msg("failed to create product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"id":      id,
	})
}

// HandleUpdateProduct merges arbitrary body fields into an existing
// product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	fields := bson.M{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.UpdateProduct(c.Context(), id, fields); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to update product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Product updated",
	})
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}

	if err := h.service.DeleteProduct(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Error().Err(err).Str("id", c.Params("id")).Msg("failed to delete product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Product deleted",
	})
}
