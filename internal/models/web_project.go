package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portfolio showcase entry.
type WebProject struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:2000;not null" json:"description"`

	ImageURL string `gorm:"size:2000;not null" json:"imageUrl"`
	SiteURL  string `gorm:"size:2000;not null" json:"siteUrl"`

	Stack  string `gorm:"size:400;not null" json:"stack"`
	Result string `gorm:"size:800;not null" json:"result"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *WebProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
