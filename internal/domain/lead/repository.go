package lead

import (
	"context"

	"github.com/webforge-studio/studio-api/internal/models"
)

// ClientGrant carries everything the approval transaction needs to open a
// portal account for the lead.
type ClientGrant struct {
	Name         string
	Email        string
	PasswordHash string

	ProjectTitle       string
	ProjectDescription string
}

type Repository interface {
	GetByID(
		ctx context.Context,
		id string,
	) (*models.LeadRequest, error)

	// ApproveWithProject flips the lead to Approuvé, upserts the client
	// account and creates its project in a single transaction. Either all
	// three rows land or none do.
	ApproveWithProject(
		ctx context.Context,
		req *models.LeadRequest,
		grant ClientGrant,
	) (*models.Client, error)
}
