package routes

import (
	"net/http"

	"quizbox/handlers"
	"quizbox/middleware"
	"quizbox/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	resultHandler *handlers.ResultHandler,
	authService *services.AuthService,
) {
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// Catalog reads (public)
		api.GET("/quizzes", quizHandler.ListQuizzes)
		api.GET("/quizzes/:id", quizHandler.GetQuiz)

		// Authoring (admin only)
		admin := api.Group("/")
		admin.Use(middleware.AuthRequired(authService), middleware.AdminRequired())
		{
			admin.POST("/quizzes", quizHandler.CreateQuiz)
			admin.POST("/quizzes/:id/questions", quizHandler.AddQuestion)
		}

		// Submissions and history (any authenticated user)
		protected := api.Group("/")
		protected.Use(middleware.AuthRequired(authService))
		{
			protected.POST("/quizzes/:id/submit", resultHandler.Submit)
			protected.GET("/results", resultHandler.ListResults)
		}

		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
}
