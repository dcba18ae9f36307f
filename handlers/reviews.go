package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gamehub/models"
	"gamehub/monitoring"
	"gamehub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// reviewXP is awarded for the first review of a game; re-rating earns nothing.
const reviewXP = 100

// UpsertReview creates the user's review for a game or updates it in place.
// The overall score is always recomputed from the five attributes.
func (h *Handler) UpsertReview(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var existing models.Review
	err := h.DB.Where("owner_id = ? AND game_id = ?", user.ID, input.GameID).First(&existing).Error

	switch {
	case err == nil:
		existing.Gameplay = input.Gameplay
		existing.Graphics = input.Graphics
		existing.Narrative = input.Narrative
		existing.Audio = input.Audio
		existing.Performance = input.Performance
		existing.IsFavorite = input.IsFavorite
		if input.Genre != "" {
			existing.Genre = input.Genre
		}
		if input.GameImageURL != "" {
			existing.GameImageURL = input.GameImageURL
		}
		existing.ComputeOverall()

		if err := h.DB.Save(&existing).Error; err != nil {
			h.Log.WithError(err).Error("Failed to update review")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		monitoring.ReviewsWritten.WithLabelValues("updated").Inc()
		c.JSON(http.StatusOK, gin.H{"message": "Review updated", "review": existing})

	case errors.Is(err, gorm.ErrRecordNotFound):
		review := models.Review{
			GameID:       input.GameID,
			GameName:     input.GameName,
			GameImageURL: input.GameImageURL,
			Genre:        input.Genre,
			Gameplay:     input.Gameplay,
			Graphics:     input.Graphics,
			Narrative:    input.Narrative,
			Audio:        input.Audio,
			Performance:  input.Performance,
			IsFavorite:   input.IsFavorite,
			OwnerID:      user.ID,
		}
		review.ComputeOverall()

		if err := h.DB.Create(&review).Error; err != nil {
			h.Log.WithError(err).Error("Failed to create review")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}

		// First review of this game earns XP and possibly a level
		user.XP += reviewXP
		user.Level = models.LevelForXP(user.XP)
		if err := h.DB.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(map[string]interface{}{"xp": user.XP, "level": user.Level}).Error; err != nil {
			h.Log.WithError(err).Error("Failed to award XP")
		}

		monitoring.ReviewsWritten.WithLabelValues("created").Inc()
		c.JSON(http.StatusCreated, gin.H{"message": "Review saved", "review": review})

	default:
		h.Log.WithError(err).Error("Failed to look up review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
	}
}

// GetReviews returns one user's reviews, or a single review when game_id is
// also given.
func (h *Handler) GetReviews(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
		return
	}

	if gameID := c.Query("game_id"); gameID != "" {
		var review models.Review
		if err := h.DB.Where("owner_id = ? AND game_id = ?", ownerID, gameID).First(&review).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, review)
		return
	}

	var reviews []models.Review
	if err := h.DB.Where("owner_id = ?", ownerID).Order("updated_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// ToggleFavorite flips the favorite flag on the user's review of a game.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	gameID, err := strconv.Atoi(c.Param("gameID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	var review models.Review
	if err := h.DB.Where("owner_id = ? AND game_id = ?", user.ID, gameID).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	review.IsFavorite = !review.IsFavorite
	if err := h.DB.Save(&review).Error; err != nil {
		h.Log.WithError(err).Error("Failed to toggle favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite updated", "isFavorite": review.IsFavorite})
}
