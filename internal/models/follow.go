// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Follow represents a directed "user follows author" edge.
//
// The composite unique index makes the edge binary: following twice cannot
// create a second row, the storage layer rejects the duplicate and the
// repository inserts with ON CONFLICT DO NOTHING.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_user_author" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follows_user_author;index" json:"author_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
