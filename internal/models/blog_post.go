package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title   string `gorm:"size:200;not null" json:"title"`
	Slug    string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Excerpt string `gorm:"size:400;not null" json:"excerpt"`

	// Markdown source. Rendered to HTML on the public read path.
	Content string `gorm:"type:text;not null" json:"content"`

	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
