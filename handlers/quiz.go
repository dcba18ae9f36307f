package handlers

import (
	"errors"
	"net/http"

	"gamehub/analytics"
	"gamehub/models"
	"gamehub/monitoring"

	"github.com/gin-gonic/gin"
)

// GetQuiz generates a fresh quiz from the user's review history. Each call
// produces a different quiz; too little data is a client error with an
// explanatory message, not a partial quiz.
func (h *Handler) GetQuiz(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	reviews, err := h.loadUserReviews(user.ID)
	if err != nil {
		h.Log.WithError(err).Error("Failed to load reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quiz"})
		return
	}

	questions, err := analytics.GenerateQuiz(snapshotReviews(reviews))
	if errors.Is(err, analytics.ErrInsufficientReviews) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate at least 2 games to unlock your quiz"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("Failed to generate quiz")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quiz"})
		return
	}

	monitoring.QuizzesGenerated.Inc()
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
