package client

import (
	"context"

	"github.com/dmitrijs2005/portfolio/internal/models"
)

// Client is the transport-agnostic contract of the portfolio REST API: one
// method per resource and operation.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Ping(ctx context.Context) error

	// GetProfile returns the first profile, or nil when none exists.
	GetProfile(ctx context.Context) (*models.Profile, error)
	CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error)
	DeleteProfile(ctx context.Context, id models.ID) error

	ListEducations(ctx context.Context) ([]models.Education, error)
	CreateEducation(ctx context.Context, e models.Education) (models.Education, error)
	UpdateEducation(ctx context.Context, e models.Education) (models.Education, error)
	DeleteEducation(ctx context.Context, id models.ID) error

	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, s models.Skill) (models.Skill, error)
	UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, id models.ID) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id models.ID) (*models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, p models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id models.ID) error

	ListExperiences(ctx context.Context) ([]models.Experience, error)
	CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error)
	UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error)
	DeleteExperience(ctx context.Context, id models.ID) error

	ListSocialLinks(ctx context.Context) ([]models.SocialLink, error)
	CreateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error)
	UpdateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id models.ID) error

	SendContactMessage(ctx context.Context, req models.ContactMessageRequest) error
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id models.ID) error
	MarkMessageRead(ctx context.Context, id models.ID) error

	PresignUpload(ctx context.Context, req models.UploadRequest) (models.UploadTicket, error)
}

// TokenSource yields the bearer token for the next request. It is consulted on
// every authenticated call, so a logout takes effect immediately.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed TokenSource.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }
