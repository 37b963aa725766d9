package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRequest is the intake ledger. Every public form submission lands here
// with a Source discriminator; only the approval workflow mutates rows.
type LeadRequest struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:200;not null;index" json:"email"`
	Phone string `gorm:"size:40" json:"phone,omitempty"`

	// contact | quote | web-design
	Source string `gorm:"size:20;not null;index" json:"source"`

	RequestType string `gorm:"size:80" json:"requestType,omitempty"`
	Budget      string `gorm:"size:80" json:"budget,omitempty"`

	SiteType  string `gorm:"size:30" json:"siteType,omitempty"`
	PageCount int    `json:"pageCount,omitempty"`

	// Serialized per-source payload, see models/options.go.
	Options string `gorm:"type:text" json:"options,omitempty"`

	EstimateCents int    `json:"estimateCents,omitempty"`
	Description   string `gorm:"type:text" json:"description,omitempty"`

	Status    string    `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *LeadRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
