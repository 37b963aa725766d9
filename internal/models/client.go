package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portal account. Created by the approval workflow (upsert by email) or
// manually by the admin.
type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:200;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Forces the one-time password change gate before the portal is usable.
	MustResetPassword bool `gorm:"not null;default:false" json:"mustResetPassword"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type ClientProject struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"size:36;not null;index" json:"clientId"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Progress    int    `gorm:"not null;default:0" json:"progress"`

	Files []ClientProjectFile `gorm:"foreignKey:ProjectID" json:"files,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *ClientProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ClientProjectFile struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string `gorm:"size:36;not null;index" json:"projectId"`

	Name string `gorm:"size:200;not null" json:"name"`
	URL  string `gorm:"size:2000;not null" json:"url"`

	CreatedAt time.Time `json:"createdAt"`
}

func (f *ClientProjectFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Append-only.
type ClientMessage struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"size:36;not null;index" json:"clientId"`

	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m *ClientMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
