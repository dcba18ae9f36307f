package handlers

import (
	"net/http"
	"strconv"

	"gamehub/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// FollowUser makes the authenticated user follow another user.
func (h *Handler) FollowUser(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if uint(targetID) == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself"})
		return
	}

	var target models.User
	if err := h.DB.First(&target, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	follow := models.Follow{FollowerID: user.ID, FolloweeID: target.ID}
	if err := h.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
		h.Log.WithError(err).Error("Failed to create follow")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Following " + target.Username})
}

// UnfollowUser removes a follow edge.
func (h *Handler) UnfollowUser(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	result := h.DB.Where("follower_id = ? AND followee_id = ?", user.ID, targetID).Delete(&models.Follow{})
	if result.Error != nil {
		h.Log.WithError(result.Error).Error("Failed to delete follow")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not following this user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

// followListEntry is the public shape of one user in a follower list.
type followListEntry struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Level     int    `json:"level"`
}

// ListFollowers returns the users following the given user.
func (h *Handler) ListFollowers(c *gin.Context) {
	h.listFollowEdges(c, "followee_id", "follows.follower_id")
}

// ListFollowing returns the users the given user follows.
func (h *Handler) ListFollowing(c *gin.Context) {
	h.listFollowEdges(c, "follower_id", "follows.followee_id")
}

func (h *Handler) listFollowEdges(c *gin.Context, whereColumn, joinColumn string) {
	var entries []followListEntry
	if err := h.DB.Model(&models.Follow{}).
		Select("users.id, users.username, users.avatar_url, users.level").
		Joins("JOIN users ON users.id = "+joinColumn).
		Where("follows."+whereColumn+" = ?", c.Param("id")).
		Scan(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	if entries == nil {
		entries = []followListEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
