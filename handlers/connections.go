package handlers

import (
	"net/http"

	"gamehub/analytics"
	"gamehub/models"

	"github.com/gin-gonic/gin"
)

// GetConnections finds users with similar taste to the target, scored by
// overall-score distance on the games both have rated.
func (h *Handler) GetConnections(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	reviews, err := h.loadUserReviews(user.ID)
	if err != nil {
		h.Log.WithError(err).Error("Failed to load reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute connections"})
		return
	}

	target := snapshotReviews(reviews)
	if len(target) == 0 {
		c.JSON(http.StatusOK, gin.H{"connections": []analytics.CompatibilityEntry{}})
		return
	}

	gameIDs := make([]int, 0, len(reviews))
	for _, r := range reviews {
		gameIDs = append(gameIDs, r.GameID)
	}

	// Everyone else's ratings of the games the target has rated
	type ownedRow struct {
		OwnerID      uint
		Username     string
		AvatarURL    string
		GameID       int
		OverallScore float64
	}
	var rows []ownedRow
	if err := h.DB.Model(&models.Review{}).
		Select("reviews.owner_id, users.username, users.avatar_url, reviews.game_id, reviews.overall_score").
		Joins("JOIN users ON users.id = reviews.owner_id").
		Where("reviews.game_id IN ? AND reviews.owner_id != ?", gameIDs, user.ID).
		Scan(&rows).Error; err != nil {
		h.Log.WithError(err).Error("Failed to load candidate reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute connections"})
		return
	}

	others := make([]analytics.OwnedReview, 0, len(rows))
	for _, row := range rows {
		others = append(others, analytics.OwnedReview{
			OwnerID:      row.OwnerID,
			Username:     row.Username,
			AvatarURL:    row.AvatarURL,
			GameID:       row.GameID,
			OverallScore: row.OverallScore,
		})
	}

	c.JSON(http.StatusOK, gin.H{"connections": analytics.Connections(target, others)})
}
