package cli

import (
	"log"

	"quizbox/config"
	"quizbox/handlers"
	"quizbox/middleware"
	"quizbox/models"
	"quizbox/routes"
	"quizbox/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Result{},
	); err != nil {
		return err
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	quizService := services.NewQuizService(db)
	resultService := services.NewResultService(db)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	resultHandler := handlers.NewResultHandler(resultService)

	router := gin.Default()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router, authHandler, quizHandler, resultHandler, authService)

	log.Printf("Server starting on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
