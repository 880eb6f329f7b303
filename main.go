package main

import (
	"log"

	"quizbank/config"
	"quizbank/handlers"
	"quizbank/middleware"
	"quizbank/models"
	"quizbank/routes"
	"quizbank/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Topic{},
		&models.Question{},
		&models.Choice{},
		&models.ExamAttempt{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	catalogService := services.NewCatalogService(db)
	samplerService := services.NewSamplerService(db)
	attemptService := services.NewAttemptService(db)
	leaderboardService := services.NewLeaderboardService(db, services.NewRedisCache(redisClient))

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(catalogService, samplerService)
	attemptHandler := handlers.NewAttemptHandler(attemptService, leaderboardService)
	userHandler := handlers.NewUserHandler(authService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, quizHandler, attemptHandler, userHandler, authService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
