package handlers

import (
	"net/http"

	"gamehub/analytics"
	"gamehub/models"
	"gamehub/utils"

	"github.com/gin-gonic/gin"
)

// profileResponse is the full profile page payload.
type profileResponse struct {
	ID        uint                   `json:"id"`
	Username  string                 `json:"username"`
	Bio       string                 `json:"bio"`
	AvatarURL string                 `json:"avatarUrl"`
	BannerURL string                 `json:"bannerUrl"`
	XP        int                    `json:"xp"`
	Level     int                    `json:"level"`
	Accounts  map[string]bool        `json:"accounts"`
	Stats     analytics.ProfileStats `json:"stats"`
}

// GetProfile returns a user's public profile with derived statistics,
// recomputed from the current review set on every request.
func (h *Handler) GetProfile(c *gin.Context) {
	var user models.User
	if err := h.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	reviews, err := h.loadUserReviews(user.ID)
	if err != nil {
		h.Log.WithError(err).Error("Failed to load reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	resp := profileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		BannerURL: user.BannerURL,
		XP:        user.XP,
		Level:     user.Level,
		Accounts: map[string]bool{
			"steam": user.SteamID != "",
			"xbox":  user.XboxID != "",
			"psn":   user.PSNID != "",
			"epic":  user.EpicID != "",
		},
		Stats: analytics.ComputeProfileStats(snapshotReviews(reviews), snapshotUser(user)),
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var input models.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.BannerURL != nil {
		user.BannerURL = *input.BannerURL
	}
	if input.SteamID != nil {
		user.SteamID = *input.SteamID
	}
	if input.XboxID != nil {
		user.XboxID = *input.XboxID
	}
	if input.PSNID != nil {
		user.PSNID = *input.PSNID
	}
	if input.EpicID != nil {
		user.EpicID = *input.EpicID
	}

	if err := h.DB.Save(&user).Error; err != nil {
		h.Log.WithError(err).Error("Failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}
