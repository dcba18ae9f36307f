package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gamehub/models"
	"gamehub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpsertTierEntry places a game in a tier on the user's tier list, moving it
// if it was already placed.
func (h *Handler) UpsertTierEntry(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var input models.TierListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var existing models.TierListEntry
	err := h.DB.Where("owner_id = ? AND game_id = ?", user.ID, input.GameID).First(&existing).Error

	switch {
	case err == nil:
		existing.Tier = input.Tier
		if input.GameImageURL != "" {
			existing.GameImageURL = input.GameImageURL
		}
		if err := h.DB.Save(&existing).Error; err != nil {
			h.Log.WithError(err).Error("Failed to move tier entry")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tier list"})
			return
		}
		c.JSON(http.StatusOK, existing)

	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := models.TierListEntry{
			OwnerID:      user.ID,
			GameID:       input.GameID,
			GameName:     input.GameName,
			GameImageURL: input.GameImageURL,
			Tier:         input.Tier,
		}
		if err := h.DB.Create(&entry).Error; err != nil {
			h.Log.WithError(err).Error("Failed to create tier entry")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tier list"})
			return
		}
		c.JSON(http.StatusCreated, entry)

	default:
		h.Log.WithError(err).Error("Failed to look up tier entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tier list"})
	}
}

// GetTierList returns a user's tier list grouped by tier.
func (h *Handler) GetTierList(c *gin.Context) {
	var entries []models.TierListEntry
	if err := h.DB.Where("owner_id = ?", c.Param("userID")).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tier list"})
		return
	}

	tiers := map[string][]models.TierListEntry{
		"S": {}, "A": {}, "B": {}, "C": {}, "D": {}, "F": {},
	}
	for _, e := range entries {
		tiers[e.Tier] = append(tiers[e.Tier], e)
	}
	c.JSON(http.StatusOK, tiers)
}

// DeleteTierEntry removes a game from the user's tier list.
func (h *Handler) DeleteTierEntry(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	gameID, err := strconv.Atoi(c.Param("gameID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	result := h.DB.Where("owner_id = ? AND game_id = ?", user.ID, gameID).Delete(&models.TierListEntry{})
	if result.Error != nil {
		h.Log.WithError(result.Error).Error("Failed to delete tier entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tier list"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not on the tier list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from tier list"})
}
