package services

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

// fakeClient реализует client.Client для юнит-тестов Admin.
// Каждый вызов считается в calls по имени метода.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int
	seq   int

	// поведение/результаты
	LoginResp *models.LoginResponse
	LoginErr  error
	PingErr   error

	Profile     *models.Profile
	Educations  []models.Education
	Skills      []models.Skill
	Projects    []models.Project
	Experiences []models.Experience
	SocialLinks []models.SocialLink
	Messages    []models.ContactMessage

	// FetchErr ломает загрузку ресурса с указанным именем
	FetchErr map[models.Resource]error
	// MutateErr ломает любой create/update/delete
	MutateErr error

	MarkReadErr   error
	MarkReadBlock chan struct{}

	Ticket     models.UploadTicket
	PresignErr error

	LastSent models.ContactMessageRequest
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{
		calls:    make(map[string]int),
		FetchErr: make(map[models.Resource]error),
		LoginResp: &models.LoginResponse{
			Token: "tok",
			User:  models.AuthUser{ID: "1", Username: "admin", Role: models.RoleAdmin},
		},
	}
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) nextID() models.ID {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return models.ID("srv-" + strconv.Itoa(f.seq))
}

func (f *fakeClient) fetchErr(res models.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.FetchErr[res]
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	f.hit("Login")
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginResp, nil
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.hit("Ping")
	return f.PingErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	f.hit("GetProfile")
	return f.Profile, f.fetchErr(models.ResourceProfiles)
}

func (f *fakeClient) CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	f.hit("CreateProfile")
	if f.MutateErr != nil {
		return models.Profile{}, f.MutateErr
	}
	p.ID = f.nextID()
	return p, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	f.hit("UpdateProfile")
	return p, f.MutateErr
}

func (f *fakeClient) DeleteProfile(ctx context.Context, id models.ID) error {
	f.hit("DeleteProfile")
	return f.MutateErr
}

func (f *fakeClient) ListEducations(ctx context.Context) ([]models.Education, error) {
	f.hit("ListEducations")
	return f.Educations, f.fetchErr(models.ResourceEducations)
}

func (f *fakeClient) CreateEducation(ctx context.Context, e models.Education) (models.Education, error) {
	f.hit("CreateEducation")
	if f.MutateErr != nil {
		return models.Education{}, f.MutateErr
	}
	e.ID = f.nextID()
	return e, nil
}

func (f *fakeClient) UpdateEducation(ctx context.Context, e models.Education) (models.Education, error) {
	f.hit("UpdateEducation")
	return e, f.MutateErr
}

func (f *fakeClient) DeleteEducation(ctx context.Context, id models.ID) error {
	f.hit("DeleteEducation")
	return f.MutateErr
}

func (f *fakeClient) ListSkills(ctx context.Context) ([]models.Skill, error) {
	f.hit("ListSkills")
	return f.Skills, f.fetchErr(models.ResourceSkills)
}

func (f *fakeClient) CreateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	f.hit("CreateSkill")
	if f.MutateErr != nil {
		return models.Skill{}, f.MutateErr
	}
	s.ID = f.nextID()
	// сервер нормализует уровень
	if s.Level > 100 {
		s.Level = 100
	}
	return s, nil
}

func (f *fakeClient) UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	f.hit("UpdateSkill")
	return s, f.MutateErr
}

func (f *fakeClient) DeleteSkill(ctx context.Context, id models.ID) error {
	f.hit("DeleteSkill")
	return f.MutateErr
}

func (f *fakeClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.hit("ListProjects")
	return f.Projects, f.fetchErr(models.ResourceProjects)
}

func (f *fakeClient) GetProject(ctx context.Context, id models.ID) (*models.Project, error) {
	f.hit("GetProject")
	for _, p := range f.Projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeClient) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	f.hit("CreateProject")
	if f.MutateErr != nil {
		return models.Project{}, f.MutateErr
	}
	p.ID = f.nextID()
	return p, nil
}

func (f *fakeClient) UpdateProject(ctx context.Context, p models.Project) (models.Project, error) {
	f.hit("UpdateProject")
	return p, f.MutateErr
}

func (f *fakeClient) DeleteProject(ctx context.Context, id models.ID) error {
	f.hit("DeleteProject")
	return f.MutateErr
}

func (f *fakeClient) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	f.hit("ListExperiences")
	return f.Experiences, f.fetchErr(models.ResourceExperiences)
}

func (f *fakeClient) CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	f.hit("CreateExperience")
	if f.MutateErr != nil {
		return models.Experience{}, f.MutateErr
	}
	e.ID = f.nextID()
	return e, nil
}

func (f *fakeClient) UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	f.hit("UpdateExperience")
	return e, f.MutateErr
}

func (f *fakeClient) DeleteExperience(ctx context.Context, id models.ID) error {
	f.hit("DeleteExperience")
	return f.MutateErr
}

func (f *fakeClient) ListSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	f.hit("ListSocialLinks")
	return f.SocialLinks, f.fetchErr(models.ResourceSocialLinks)
}

func (f *fakeClient) CreateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	f.hit("CreateSocialLink")
	if f.MutateErr != nil {
		return models.SocialLink{}, f.MutateErr
	}
	l.ID = f.nextID()
	return l, nil
}

func (f *fakeClient) UpdateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	f.hit("UpdateSocialLink")
	return l, f.MutateErr
}

func (f *fakeClient) DeleteSocialLink(ctx context.Context, id models.ID) error {
	f.hit("DeleteSocialLink")
	return f.MutateErr
}

func (f *fakeClient) SendContactMessage(ctx context.Context, req models.ContactMessageRequest) error {
	f.hit("SendContactMessage")
	f.mu.Lock()
	f.LastSent = req
	f.mu.Unlock()
	return f.MutateErr
}

func (f *fakeClient) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	f.hit("ListMessages")
	return f.Messages, f.fetchErr(models.ResourceContact)
}

func (f *fakeClient) DeleteMessage(ctx context.Context, id models.ID) error {
	f.hit("DeleteMessage")
	return f.MutateErr
}

func (f *fakeClient) MarkMessageRead(ctx context.Context, id models.ID) error {
	f.hit("MarkMessageRead")
	if f.MarkReadBlock != nil {
		select {
		case <-f.MarkReadBlock:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.MarkReadErr
}

func (f *fakeClient) PresignUpload(ctx context.Context, req models.UploadRequest) (models.UploadTicket, error) {
	f.hit("PresignUpload")
	return f.Ticket, f.PresignErr
}

// failingStore is a session.Store whose writes fail.
type failingStore struct{}

var errStore = errors.New("store is broken")

func (failingStore) Save(context.Context, string, models.AuthUser) error { return errStore }
func (failingStore) Clear(context.Context) error                        { return errStore }
func (failingStore) Token(context.Context) (string, error)              { return "", errStore }
func (failingStore) Restore(context.Context) (*session.Session, bool)   { return nil, false }
