package models

import "time"

// Review is one user's rating of one game. A user has at most one review per
// game; posting again updates the existing row. OverallScore is always the
// mean of the five attribute scores at the time of the last write.
type Review struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	GameID       int    `gorm:"not null;index;uniqueIndex:idx_owner_game" json:"gameId"`
	GameName     string `json:"gameName"`
	GameImageURL string `gorm:"type:text" json:"gameImageUrl"`
	Genre        string `json:"genre"`

	Gameplay    float64 `json:"gameplay"`
	Graphics    float64 `json:"graphics"`
	Narrative   float64 `json:"narrative"`
	Audio       float64 `json:"audio"`
	Performance float64 `json:"performance"`

	OverallScore float64 `json:"overallScore"`
	IsFavorite   bool    `gorm:"default:false" json:"isFavorite"`

	OwnerID   uint      `gorm:"not null;index;uniqueIndex:idx_owner_game" json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ComputeOverall recomputes the derived overall score from the five attributes.
func (r *Review) ComputeOverall() {
	r.OverallScore = (r.Gameplay + r.Graphics + r.Narrative + r.Audio + r.Performance) / 5
}

// ReviewInput - validated payload for creating or updating a review
type ReviewInput struct {
	GameID       int     `json:"gameId" validate:"required,gte=1"`
	GameName     string  `json:"gameName" validate:"required"`
	GameImageURL string  `json:"gameImageUrl"`
	Genre        string  `json:"genre"`
	Gameplay     float64 `json:"gameplay" validate:"gte=0,lte=10"`
	Graphics     float64 `json:"graphics" validate:"gte=0,lte=10"`
	Narrative    float64 `json:"narrative" validate:"gte=0,lte=10"`
	Audio        float64 `json:"audio" validate:"gte=0,lte=10"`
	Performance  float64 `json:"performance" validate:"gte=0,lte=10"`
	IsFavorite   bool    `json:"isFavorite"`
}
