package routes

import (
	"net/http"

	"quizbank/handlers"
	"quizbank/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	attemptHandler *handlers.AttemptHandler,
	userHandler *handlers.UserHandler,
	verifier middleware.TokenVerifier,
) {
	// API routes
	api := router.Group("/api")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.GET("/profile", middleware.Auth(verifier), userHandler.GetProfile)
		}

		// Quiz routes (protected)
		quiz := api.Group("/quiz")
		quiz.Use(middleware.Auth(verifier))
		{
			quiz.POST("/create", quizHandler.CreateQuiz)
			quiz.GET("/random", quizHandler.RandomQuestions)
			quiz.POST("/submit", attemptHandler.SubmitAttempt)
			quiz.GET("/leaderboard", attemptHandler.Leaderboard)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
