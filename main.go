package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bloglist/internal/handlers"
	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/internal/services"
	"bloglist/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":3003")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// The store target has no sensible default. Refusing to start beats
	// failing on the first request.
	databaseDSN := viper.GetString("DATABASE_DSN")
	if databaseDSN == "" {
		log.Fatal("DATABASE_DSN is not set")
	}

	// --- Initialize Database (GORM) ---
	db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Blog{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// An empty RABBITMQ_URL disables event publishing; the blog service
	// tolerates a nil client.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	blogService := services.NewBlogService(blogRepo, mqClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")

	// User registration, user listing, login and blog reads are public
	// and registered ahead of the auth middleware groups.
	authHandler.RegisterRoutes(api)
	blogHandler.RegisterPublicRoutes(api)

	// Blog creation takes an optional token, deletion and likes updates
	// require one.
	optionalAuth := api.Group("", middleware.AuthOptional(authService))
	blogHandler.RegisterCreateRoute(optionalAuth)
	requiredAuth := api.Group("", middleware.AuthRequired(authService))
	blogHandler.RegisterProtectedRoutes(requiredAuth)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": mqClient != nil,
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Listens for blog lifecycle events published by the blog service.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for blog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received blog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeBlogEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	// RabbitMQ connection close is handled by defer above
	log.Println("Server gracefully stopped")
}
