package models

import "time"

// Post is a top-level blog entry.
type Post struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"size:30;not null" json:"title" validate:"required,max=30"`
	Content      string     `gorm:"size:1200;not null" json:"content" validate:"required,max=1200"`
	CreationDate *time.Time `gorm:"not null" json:"creationDate" validate:"required"`
	Comments     []Comment  `gorm:"foreignKey:PostID;references:ID" json:"comments,omitempty"`
}

// Validate reports one message per offending field, empty when the post is valid.
func (p *Post) Validate() []string {
	return validateStruct(p)
}
