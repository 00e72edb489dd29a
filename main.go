package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"sneakerverse/internal/config"
	"sneakerverse/internal/handlers"
	"sneakerverse/internal/repositories"
	"sneakerverse/internal/services"
	"sneakerverse/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()
	log.Logger = config.NewLogger(cfg.LogLevel)

	// --- Connect to MongoDB ---
	// The listener is not opened until the connection and ping succeed;
	// a failure here aborts startup instead of serving traffic.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	log.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")
	db := client.Database(cfg.MongoDatabase)

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		log.Info().Msg("RabbitMQ client connected")
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	productRepo := repositories.NewMongoProductRepository(db)
	cartRepo := repositories.NewMongoCartRepository(db)
	orderRepo := repositories.NewMongoOrderRepository(db)

	// --- Initialize Services ---
	var publisher services.OrderEventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, publisher)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowCredentials: true,
	}))

	// --- API Routes ---
	authHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	cartHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		mongoStatus := "connected"
		if err := client.Ping(c.Context(), readpref.Primary()); err != nil {
			status = "degraded"
			mongoStatus = "disconnected"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": status,
			"mongo":  mongoStatus,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			messageHandler := func(msg amqp.Delivery) error {
				log.Info().Uint64("tag", msg.DeliveryTag).RawJSON("event", msg.Body).Msg("received order event")
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Error().Err(consumerErr).Msg("failed to start RabbitMQ consumer")
			}
		}()
	}

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.Address()).Msg("starting server")
		if err := app.Listen(cfg.Address()); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()
	if err := client.Disconnect(disconnectCtx); err != nil {
		log.Error().Err(err).Msg("error disconnecting from MongoDB")
	}

	log.Info().Msg("server gracefully stopped")
}
