package models

import "time"

// TierListEntry places one game into a tier on the owner's tier list.
// Like reviews, a user has at most one entry per game.
type TierListEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OwnerID      uint      `gorm:"not null;index;uniqueIndex:idx_tier_owner_game" json:"ownerId"`
	GameID       int       `gorm:"not null;uniqueIndex:idx_tier_owner_game" json:"gameId"`
	GameName     string    `json:"gameName"`
	GameImageURL string    `gorm:"type:text" json:"gameImageUrl"`
	Tier         string    `gorm:"not null" json:"tier"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TierListInput - validated payload for placing a game in a tier
type TierListInput struct {
	GameID       int    `json:"gameId" validate:"required,gte=1"`
	GameName     string `json:"gameName" validate:"required"`
	GameImageURL string `json:"gameImageUrl"`
	Tier         string `json:"tier" validate:"required,oneof=S A B C D F"`
}
