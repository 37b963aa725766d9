package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit requests have their own ledger: same lifecycle shape as leads but
// no approval-to-client flow, only Nouveau -> Terminé.
type SecurityAuditRequest struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:200;not null" json:"email"`
	WebsiteURL string `gorm:"size:500;not null" json:"websiteUrl"`

	Description string `gorm:"type:text;not null" json:"description"`

	Status    string    `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *SecurityAuditRequest) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
