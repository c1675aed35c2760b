// Package models contains data structures for the application's domain models.
package models

import "time"

// Follower is a directed follow edge: FollowerID follows FollowingID.
// The pair must be unique. Edges are hard-deleted on unfollow so a
// re-follow never collides with an old row.
type Follower struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Follower  User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"following,omitempty"`
}

// TableName overrides the default pluralization.
func (Follower) TableName() string {
	return "followers"
}
