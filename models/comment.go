package models

import "time"

// Comment is a reply attached to exactly one post.
type Comment struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	PostID       string     `gorm:"index;size:36;not null" json:"postId" validate:"required"`
	Content      string     `gorm:"size:120;not null" json:"content" validate:"required,max=120"`
	Author       string     `gorm:"size:30;not null" json:"author" validate:"required,max=30"`
	CreationDate *time.Time `gorm:"not null" json:"creationDate" validate:"required"`
}

// Validate reports one message per offending field, empty when the comment is valid.
func (c *Comment) Validate() []string {
	return validateStruct(c)
}
