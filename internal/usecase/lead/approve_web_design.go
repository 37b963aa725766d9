package lead

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/webforge-studio/studio-api/internal/domain/lead"
	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/mail"
	"github.com/webforge-studio/studio-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ApproveWebDesignInput struct {
	RequestID string
}

type ApproveWebDesignOutput struct {
	Request *models.LeadRequest
	Client  *models.Client

	// Already approved on a previous call.
	AlreadyApproved bool
}

// ======================================================
// USE CASE
// ======================================================

type ApproveWebDesign struct {
	repo    domain.Repository
	mail    *mail.Dispatcher
	siteURL string
}

func NewApproveWebDesign(
	repo domain.Repository,
	mailer *mail.Dispatcher,
	siteURL string,
) *ApproveWebDesign {
	return &ApproveWebDesign{
		repo:    repo,
		mail:    mailer,
		siteURL: siteURL,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ApproveWebDesign) Execute(
	ctx context.Context,
	in ApproveWebDesignInput,
) (*ApproveWebDesignOutput, error) {

	req, err := uc.repo.GetByID(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}

	if req.Source != string(domain.SourceWebDesign) {
		return nil, httperr.ErrBusiness("not_approvable")
	}

	if req.Status == string(domain.StatusApproved) {
		return &ApproveWebDesignOutput{
			Request:         req,
			AlreadyApproved: true,
		}, nil
	}

	tempPassword, err := makeTempPassword()
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), 12)
	if err != nil {
		return nil, err
	}

	title := "Site web"
	if req.SiteType != "" {
		title = "Site web — " + req.SiteType
	}
	description := req.Description
	if description == "" {
		description = "Demande envoyée depuis le simulateur Web Design."
	}

	client, err := uc.repo.ApproveWithProject(ctx, req, domain.ClientGrant{
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hash),
		ProjectTitle:       title,
		ProjectDescription: description,
	})
	if err != nil {
		return nil, err
	}

	if uc.mail != nil {
		loginURL := strings.TrimRight(uc.siteURL, "/") + "/client-area/login"
		uc.mail.Dispatch(mail.ClientAccess(client.Email, client.Name, tempPassword, loginURL))
	}

	return &ApproveWebDesignOutput{
		Request: req,
		Client:  client,
	}, nil
}

// makeTempPassword draws 12 random bytes and keeps 14 url-safe characters.
func makeTempPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf)[:14], nil
}
