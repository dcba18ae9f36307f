package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email" validate:"required,email"`
	Username     string `gorm:"unique;not null" json:"username" validate:"required,min=3,max=50"`
	PasswordHash string `gorm:"not null" json:"-"`
	Bio          string `gorm:"default:'Passionate gamer.'" json:"bio"`
	AvatarURL    string `gorm:"type:text" json:"avatarUrl"`
	BannerURL    string `gorm:"type:text" json:"bannerUrl"`
	XP           int    `gorm:"default:0" json:"xp"`
	Level        int    `gorm:"default:1" json:"level"`

	// Platform identifiers; empty string means the account is not connected.
	SteamID string `json:"steamId"`
	XboxID  string `json:"xboxId"`
	PSNID   string `json:"psnId"`
	EpicID  string `json:"epicId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LevelForXP derives the level from accumulated XP: 500 XP per level, base 1.
func LevelForXP(xp int) int {
	return 1 + xp/500
}

// RegisterInput - validated payload for registration
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// LoginInput - validated payload for login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileInput - partial profile update, nil fields stay unchanged
type UpdateProfileInput struct {
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
	BannerURL *string `json:"bannerUrl" validate:"omitempty,url"`
	SteamID   *string `json:"steamId"`
	XboxID    *string `json:"xboxId"`
	PSNID     *string `json:"psnId"`
	EpicID    *string `json:"epicId"`
}
