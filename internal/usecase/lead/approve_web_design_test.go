package lead

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/webforge-studio/studio-api/internal/domain/lead"
	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/infra/repository"
	"github.com/webforge-studio/studio-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.LeadRequest{},
		&models.Client{},
		&models.ClientProject{},
	))

	return db
}

func seedWebDesignLead(t *testing.T, db *gorm.DB) *models.LeadRequest {
	t.Helper()

	req := &models.LeadRequest{
		Name:     "Claire Dubois",
		Email:    "claire@exemple.fr",
		Source:   string(domain.SourceWebDesign),
		SiteType: "ecommerce",
		Status:   string(domain.StatusNew),
	}
	require.NoError(t, db.Create(req).Error)
	return req
}

func TestApproveWebDesign(t *testing.T) {
	db := setupTestDB(t)
	req := seedWebDesignLead(t, db)

	uc := NewApproveWebDesign(repository.NewLeadGormRepository(db), nil, "https://studio.example/")

	out, err := uc.Execute(context.Background(), ApproveWebDesignInput{RequestID: req.ID})
	require.NoError(t, err)
	require.NotNil(t, out.Client)
	assert.False(t, out.AlreadyApproved)
	assert.Equal(t, string(domain.StatusApproved), out.Request.Status)

	var client models.Client
	require.NoError(t, db.Where("email = ?", "claire@exemple.fr").First(&client).Error)
	assert.Equal(t, "Claire Dubois", client.Name)
	assert.True(t, client.MustResetPassword)
	assert.NotEmpty(t, client.PasswordHash)

	var projects []models.ClientProject
	require.NoError(t, db.Where("client_id = ?", client.ID).Find(&projects).Error)
	require.Len(t, projects, 1)
	assert.Equal(t, "Site web — ecommerce", projects[0].Title)

	var stored models.LeadRequest
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, string(domain.StatusApproved), stored.Status)
}

func TestApproveWebDesignIdempotent(t *testing.T) {
	db := setupTestDB(t)
	req := seedWebDesignLead(t, db)

	uc := NewApproveWebDesign(repository.NewLeadGormRepository(db), nil, "https://studio.example")

	_, err := uc.Execute(context.Background(), ApproveWebDesignInput{RequestID: req.ID})
	require.NoError(t, err)

	out, err := uc.Execute(context.Background(), ApproveWebDesignInput{RequestID: req.ID})
	require.NoError(t, err)
	assert.True(t, out.AlreadyApproved)

	var count int64
	require.NoError(t, db.Model(&models.ClientProject{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApproveWebDesignRejectsOtherSources(t *testing.T) {
	db := setupTestDB(t)

	req := &models.LeadRequest{
		Name:   "Marc",
		Email:  "marc@exemple.fr",
		Source: string(domain.SourceContact),
		Status: string(domain.StatusNew),
	}
	require.NoError(t, db.Create(req).Error)

	uc := NewApproveWebDesign(repository.NewLeadGormRepository(db), nil, "https://studio.example")

	_, err := uc.Execute(context.Background(), ApproveWebDesignInput{RequestID: req.ID})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_approvable"))
}

func TestApproveWebDesignUnknownRequest(t *testing.T) {
	db := setupTestDB(t)

	uc := NewApproveWebDesign(repository.NewLeadGormRepository(db), nil, "https://studio.example")

	_, err := uc.Execute(context.Background(), ApproveWebDesignInput{RequestID: "missing"})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))
}

func TestApproveWebDesignRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	req := seedWebDesignLead(t, db)

	// Break the project table so the transaction fails after the client
	// upsert. Nothing from the transaction may survive.
	require.NoError(t, db.Migrator().DropTable(&models.ClientProject{}))

	uc := NewApproveWebDesign(repository.NewLeadGormRepository(db), nil, "https://studio.example")

	_, err := uc.Execute(context.Background(), ApproveWebDesignInput{RequestID: req.ID})
	require.Error(t, err)

	var clients int64
	require.NoError(t, db.Model(&models.Client{}).Count(&clients).Error)
	assert.EqualValues(t, 0, clients)

	var stored models.LeadRequest
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, string(domain.StatusNew), stored.Status)
}
