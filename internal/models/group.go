// Package models contains data structures for the application's domain models.
package models

// Group represents a topic under which posts can be filed.
// Groups are administrative fixtures: they are created out-of-band and
// posts keep a NULL group reference if their group is removed.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"unique;not null;index" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}
