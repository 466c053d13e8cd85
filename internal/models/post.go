package models

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"category"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	Slug       string    `gorm:"size:200;index" json:"slug"` // derived from Title on every write
	Image      string    `json:"image"`                      // storage reference only, upload handled elsewhere
	Published  bool      `gorm:"default:true" json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE;" json:"comments"`
	Likes    []Like    `gorm:"constraint:OnDelete:CASCADE;" json:"likes"`
}
