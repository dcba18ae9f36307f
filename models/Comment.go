package models

import "time"

// Comment is a message left by one user on another user's profile wall.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profileId"`
	AuthorID  uint      `gorm:"not null" json:"authorId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentInput - validated payload for posting a comment
type CommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
