package cli

import (
	"log"

	"quizbox/config"
	"quizbox/models"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the database with demo accounts and a sample quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
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
			return Seed(db)
		},
	}
}

// Seed wipes all rows and inserts two demo accounts and one sample quiz.
func Seed(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Result{},
		&models.Question{},
		&models.Quiz{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Email: "admin@example.com", PasswordHash: string(adminHash), Role: models.RoleAdmin},
		{Email: "user@example.com", PasswordHash: string(userHash), Role: models.RoleUser},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	quiz := models.Quiz{Title: "General Knowledge", Description: "A simple 3-question quiz"}
	if err := db.Create(&quiz).Error; err != nil {
		return err
	}

	questions := []models.Question{
		{
			QuizID:       quiz.ID,
			Text:         "What is the capital of France?",
			Choices:      models.StringList{"Berlin", "Madrid", "Paris", "Rome"},
			CorrectIndex: 2,
		},
		{
			QuizID:       quiz.ID,
			Text:         "2 + 2 = ?",
			Choices:      models.StringList{"3", "4", "5", "22"},
			CorrectIndex: 1,
		},
		{
			QuizID:       quiz.ID,
			Text:         "Which planet is known as the Red Planet?",
			Choices:      models.StringList{"Earth", "Mars", "Jupiter", "Venus"},
			CorrectIndex: 1,
		},
	}
	if err := db.Create(&questions).Error; err != nil {
		return err
	}

	log.Println("Seed completed")
	return nil
}
