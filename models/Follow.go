package models

import "time"

// Follow is a one-directional social edge. The composite primary key keeps
// the pair unique; mutual follows are two rows.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey" json:"followerId"`
	FolloweeID uint      `gorm:"primaryKey" json:"followeeId"`
	CreatedAt  time.Time `json:"createdAt"`

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
}
