package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/webforge-studio/studio-api/internal/domain/lead"
	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/models"
)

type LeadGormRepository struct {
	db *gorm.DB
}

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

func (r *LeadGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.LeadRequest, error) {

	var req models.LeadRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&req).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("request_not_found")
	}
	if err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *LeadGormRepository) ApproveWithProject(
	ctx context.Context,
	req *models.LeadRequest,
	grant domain.ClientGrant,
) (*models.Client, error) {

	var client models.Client

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", grant.Email).First(&client).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			client = models.Client{
				Name:              grant.Name,
				Email:             grant.Email,
				PasswordHash:      grant.PasswordHash,
				MustResetPassword: true,
			}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Existing account: reset the password so the mailed
			// credentials always work.
			client.Name = grant.Name
			client.PasswordHash = grant.PasswordHash
			client.MustResetPassword = true
			if err := tx.Save(&client).Error; err != nil {
				return err
			}
		}

		project := models.ClientProject{
			ClientID:    client.ID,
			Title:       grant.ProjectTitle,
			Description: grant.ProjectDescription,
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		req.Status = string(domain.StatusApproved)
		return tx.Model(&models.LeadRequest{}).
			Where("id = ?", req.ID).
			Update("status", req.Status).Error
	})
	if err != nil {
		return nil, err
	}

	return &client, nil
}

// Compile-time check
var _ domain.Repository = (*LeadGormRepository)(nil)
