// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a blog post in the Inkwell application.
//
// PubDate is set once at creation and never updated afterwards; all feeds
// order by it descending. GroupID is nullable and reset to NULL by the
// database when the referenced group is deleted.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"column:pub_date;index;<-:create" json:"pub_date"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID  *uint     `gorm:"index" json:"group_id,omitempty"`
	Group    *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->;-:migration" json:"comments_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}
