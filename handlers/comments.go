package handlers

import (
	"net/http"

	"gamehub/models"
	"gamehub/utils"

	"github.com/gin-gonic/gin"
)

// CreateComment posts a comment on a profile wall.
func (h *Handler) CreateComment(c *gin.Context) {
	author := c.MustGet("user").(models.User)

	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var profile models.User
	if err := h.DB.First(&profile, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	comment := models.Comment{
		ProfileID: profile.ID,
		AuthorID:  author.ID,
		Content:   input.Content,
	}
	if err := h.DB.Create(&comment).Error; err != nil {
		h.Log.WithError(err).Error("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post comment"})
		return
	}
	comment.Author = author

	c.JSON(http.StatusCreated, comment)
}

// ListComments returns a profile's comments, newest first.
func (h *Handler) ListComments(c *gin.Context) {
	var comments []models.Comment
	if err := h.DB.Where("profile_id = ?", c.Param("id")).
		Preload("Author").
		Order("created_at DESC").
		Limit(50).
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}
