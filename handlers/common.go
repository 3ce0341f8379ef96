package handlers

import (
	"errors"
	"net/http"

	"quizbox/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. Anything unrecognized is
// a storage failure and collapses to a generic message so driver detail never
// reaches clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
