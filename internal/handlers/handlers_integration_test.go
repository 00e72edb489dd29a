package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sneakerverse/internal/handlers"
	"sneakerverse/internal/repositories"
	"sneakerverse/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp wires a Fiber app with all handlers over in-memory
// repositories.
func setupApp() *fiber.App {
	userRepo := repositories.NewMockUserRepository()
	productRepo := repositories.NewMockProductRepository()
	cartRepo := repositories.NewMockCartRepository()
	orderRepo := repositories.NewMockOrderRepository()

	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo))
	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo))
	productHandler := handlers.NewProductHandler(services.NewProductService(productRepo))
	cartHandler := handlers.NewCartHandler(services.NewCartService(cartRepo))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(orderRepo, nil))

	app := fiber.New()
	authHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	cartHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	decoded := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestSignupAndSignin(t *testing.T) {
	app := setupApp()

	// Signup validation
	status, body := doJSON(t, app, http.MethodPost, "/signup", map[string]any{
		"email": "a@b.com",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email and password are required", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/signup", map[string]any{
		"email": "a@b.com", "password": "short", "confirmPassword": "short",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Password must be at least 8 characters long", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/signup", map[string]any{
		"email": "a@b.com", "password": "password1", "confirmPassword": "password2",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Passwords do not match", body["error"])

	// Successful signup
	status, body = doJSON(t, app, http.MethodPost, "/signup", map[string]any{
		"name": "Sam", "email": "A@B.com", "password": "password1", "confirmPassword": "password1",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotEmpty(t, body["userId"])

	// Duplicate signup with a differently cased email
	status, body = doJSON(t, app, http.MethodPost, "/signup", map[string]any{
		"email": "a@b.COM", "password": "password1", "confirmPassword": "password1",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already registered", body["error"])

	// Signin with normalized email
	status, body = doJSON(t, app, http.MethodPost, "/signin", map[string]any{
		"email": "a@b.com", "password": "password1",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, "Sam", user["name"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, user, "password")

	// Wrong password and unknown email share one generic response
	status, wrongPassword := doJSON(t, app, http.MethodPost, "/signin", map[string]any{
		"email": "a@b.com", "password": "nottherightone",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, unknownEmail := doJSON(t, app, http.MethodPost, "/signin", map[string]any{
		"email": "nobody@b.com", "password": "password1",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, "Invalid email or password", unknownEmail["error"])
}

func TestUserCRUD(t *testing.T) {
	app := setupApp()

	// Missing required fields
	status, body := doJSON(t, app, http.MethodPost, "/users", map[string]any{
		"name": "Sam",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Name, email, and password required", body["error"])

	// Create
	status, body = doJSON(t, app, http.MethodPost, "/users", map[string]any{
		"name": "Sam", "email": "Sam@Example.COM", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User created", body["message"])
	id, ok := body["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	// The returned id resolves to the stored document with the email
	// lowercased and a creation timestamp
	status, body = doJSON(t, app, http.MethodGet, "/users/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Sam", data["name"])
	assert.Equal(t, "sam@example.com", data["email"])
	assert.NotEmpty(t, data["createdAt"])

	// List includes the user
	status, body = doJSON(t, app, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Users fetched successfully", body["message"])
	assert.Len(t, body["data"], 1)

	// Update merges fields and stamps updatedAt
	status, body = doJSON(t, app, http.MethodPut, "/users/"+id, map[string]any{
		"name": "Samuel",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User updated", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/users/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Equal(t, "Samuel", data["name"])
	assert.Equal(t, "sam@example.com", data["email"])
	assert.NotEmpty(t, data["updatedAt"])

	// An empty update set still reports success
	status, body = doJSON(t, app, http.MethodPut, "/users/"+id, map[string]any{})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User updated", body["message"])

	// Update of a non-existent id is a 404 and creates nothing
	missingID := "64b5fc2fd1f34a0f2c8b4567"
	status, body = doJSON(t, app, http.MethodPut, "/users/"+missingID, map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", body["error"])

	status, _ = doJSON(t, app, http.MethodGet, "/users/"+missingID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Delete, then get returns not found
	status, body = doJSON(t, app, http.MethodDelete, "/users/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User deleted", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", body["error"])

	status, body = doJSON(t, app, http.MethodDelete, "/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", body["error"])
}

func TestMalformedIDSurfacesAsServerError(t *testing.T) {
	app := setupApp()

	status, body := doJSON(t, app, http.MethodGet, "/users/not-a-valid-id", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to fetch user", body["error"])

	status, body = doJSON(t, app, http.MethodDelete, "/products/not-a-valid-id", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to delete product", body["error"])
}

func TestProductCRUDAndCategoryFilter(t *testing.T) {
	app := setupApp()

	// Price as a numeric string is accepted
	status, body := doJSON(t, app, http.MethodPost, "/products", map[string]any{
		"name": "Shoe", "price": "49.99", "category": "Running",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Product created", body["message"])
	id := body["id"].(string)

	status, body = doJSON(t, app, http.MethodPost, "/products", map[string]any{
		"name": "Boot", "price": 89.5, "category": "Hiking",
	})
	require.Equal(t, http.StatusCreated, status)

	// Missing fields
	status, body = doJSON(t, app, http.MethodPost, "/products", map[string]any{
		"name": "Sandal", "price": 10,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Name, price, and category required", body["error"])

	// Unparseable price
	status, body = doJSON(t, app, http.MethodPost, "/products", map[string]any{
		"name": "Sandal", "price": "cheap", "category": "Casual",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Case-insensitive category filter
	status, body = doJSON(t, app, http.MethodGet, "/products?category=running", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Products fetched successfully", body["message"])
	matched := body["data"].([]any)
	require.Len(t, matched, 1)
	assert.Equal(t, "Shoe", matched[0].(map[string]any)["name"])
	assert.Equal(t, 49.99, matched[0].(map[string]any)["price"])

	// "all" and no filter return everything
	status, body = doJSON(t, app, http.MethodGet, "/products?category=all", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, body = doJSON(t, app, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	// Get by id
	status, body = doJSON(t, app, http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Shoe", data["name"])
	assert.NotEmpty(t, data["createdAt"])

	// Update price, then delete
	status, body = doJSON(t, app, http.MethodPut, "/products/"+id, map[string]any{"price": 59.99})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product updated", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 59.99, body["data"].(map[string]any)["price"])

	status, body = doJSON(t, app, http.MethodDelete, "/products/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product deleted", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/products/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product not found", body["error"])
}

func TestCartCRUD(t *testing.T) {
	app := setupApp()

	// Missing fields
	status, body := doJSON(t, app, http.MethodPost, "/cart", map[string]any{
		"productId": "p1", "quantity": 2,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "productId, quantity, and userId required", body["error"])

	// Quantity as a numeric string is accepted; references are stored
	// without an existence check
	status, body = doJSON(t, app, http.MethodPost, "/cart", map[string]any{
		"productId": "p1", "quantity": "3", "userId": "u1",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Item added to cart", body["message"])
	id := body["id"].(string)

	status, body = doJSON(t, app, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cart fetched successfully", body["message"])
	assert.Len(t, body["data"], 1)

	status, body = doJSON(t, app, http.MethodGet, "/cart/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "p1", data["productId"])
	assert.Equal(t, float64(3), data["quantity"])

	status, body = doJSON(t, app, http.MethodPut, "/cart/"+id, map[string]any{"quantity": 5})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cart item updated", body["message"])

	status, body = doJSON(t, app, http.MethodDelete, "/cart/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cart item deleted", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/cart/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Cart item not found", body["error"])
}

func TestOrderCRUD(t *testing.T) {
	app := setupApp()

	// Missing fields
	status, body := doJSON(t, app, http.MethodPost, "/orders", map[string]any{
		"userId": "u1", "totalAmount": 10,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "userId, items, and totalAmount required", body["error"])

	// Items are stored verbatim; totalAmount accepts a numeric string
	items := []any{
		map[string]any{"productId": "p1", "quantity": 2, "note": "gift wrap"},
	}
	status, body = doJSON(t, app, http.MethodPost, "/orders", map[string]any{
		"userId": "u1", "items": items, "totalAmount": "99.98",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Order created", body["message"])
	id := body["id"].(string)

	status, body = doJSON(t, app, http.MethodGet, "/orders/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 99.98, data["totalAmount"])
	assert.Len(t, data["items"], 1)

	status, body = doJSON(t, app, http.MethodPut, "/orders/"+id, map[string]any{"status": "shipped"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Order updated", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/orders/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "shipped", body["data"].(map[string]any)["status"])

	status, body = doJSON(t, app, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Orders fetched successfully", body["message"])
	assert.Len(t, body["data"], 1)

	status, body = doJSON(t, app, http.MethodDelete, "/orders/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Order deleted", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/orders/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Order not found", body["error"])
}
