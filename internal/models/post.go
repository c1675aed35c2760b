// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxPostContentLen bounds post content length in characters.
const MaxPostContentLen = 10000

// summaryDateLayout renders timestamps the way feed clients expect,
// e.g. "Sep 05 2025, 03:04 PM".
const summaryDateLayout = "Jan 02 2006, 03:04 PM"

// Post represents a piece of content published by a user.
// UserID identifies the creator and is immutable after creation by
// convention; CreatedAt is never refreshed on content edits.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Likes     []Like         `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TotalLikes returns the number of likes currently attached to the post.
func (p *Post) TotalLikes() int {
	return len(p.Likes)
}

// PostSummary is the read-only transfer representation of a post
// returned by the feed API.
type PostSummary struct {
	ID         uint   `json:"id"`
	Content    string `json:"content"`
	CreatorID  uint   `json:"creator_id"`
	Creator    string `json:"creator"`
	CreateDate string `json:"create_date"`
	Likes      []uint `json:"likes"`
	TotalLikes int    `json:"total_likes"`
}

// Summarize converts the post into its transfer representation. Like user
// ids keep the order the likes were loaded in.
func (p *Post) Summarize() PostSummary {
	likeIDs := make([]uint, 0, len(p.Likes))
	for _, l := range p.Likes {
		likeIDs = append(likeIDs, l.UserID)
	}
	return PostSummary{
		ID:         p.ID,
		Content:    p.Content,
		CreatorID:  p.UserID,
		Creator:    p.User.Username,
		CreateDate: p.CreatedAt.Format(summaryDateLayout),
		Likes:      likeIDs,
		TotalLikes: p.TotalLikes(),
	}
}
