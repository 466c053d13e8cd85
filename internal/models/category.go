package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null;unique" json:"title"`
	Slug      string    `gorm:"size:100;index" json:"slug"` // derived from Title, never client-supplied
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
