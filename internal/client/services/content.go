package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

// collection addresses one slice of the container's content.
type collection[T models.Entity] func(c *content) *[]T

var (
	educations  collection[models.Education]      = func(c *content) *[]models.Education { return &c.educations }
	skills      collection[models.Skill]          = func(c *content) *[]models.Skill { return &c.skills }
	projects    collection[models.Project]        = func(c *content) *[]models.Project { return &c.projects }
	experiences collection[models.Experience]     = func(c *content) *[]models.Experience { return &c.experiences }
	socialLinks collection[models.SocialLink]     = func(c *content) *[]models.SocialLink { return &c.socialLinks }
	messages    collection[models.ContactMessage] = func(c *content) *[]models.ContactMessage { return &c.messages }
)

// addEntity creates v remotely and appends the server's version.
func addEntity[T models.Entity](ctx context.Context, a *Admin, col collection[T], v T,
	create func(context.Context, T) (T, error)) (T, error) {
	gen := a.generation()

	created, err := create(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}

	a.apply(gen, func() {
		s := col(&a.data)
		*s = append(slices.Clone(*s), created)
	})
	return created, nil
}

// updateEntity requires an id, updates remotely and swaps in the server's
// version of the entity with the same id.
func updateEntity[T models.Entity](ctx context.Context, a *Admin, col collection[T], v T,
	update func(context.Context, T) (T, error)) (T, error) {
	var zero T
	if v.EntityID().IsZero() {
		return zero, common.ErrMissingID
	}
	gen := a.generation()

	updated, err := update(ctx, v)
	if err != nil {
		return zero, err
	}
	// some backends answer an update without echoing the id
	if updated.EntityID().IsZero() {
		updated = v
	}

	a.apply(gen, func() {
		s := col(&a.data)
		*s = replaceByID(*s, v.EntityID(), updated)
	})
	return updated, nil
}

func deleteEntity[T models.Entity](ctx context.Context, a *Admin, col collection[T], id models.ID,
	remove func(context.Context, models.ID) error) error {
	if id.IsZero() {
		return common.ErrMissingID
	}
	gen := a.generation()

	if err := remove(ctx, id); err != nil {
		return err
	}

	a.apply(gen, func() {
		s := col(&a.data)
		*s = removeByID(*s, id)
	})
	return nil
}

// replaceByID returns a copy of items with the entry identified by id
// replaced by v. Items without a match are returned unchanged.
func replaceByID[T models.Entity](items []T, id models.ID, v T) []T {
	i := slices.IndexFunc(items, func(e T) bool { return e.EntityID() == id })
	if i < 0 {
		return items
	}
	out := slices.Clone(items)
	out[i] = v
	return out
}

func removeByID[T models.Entity](items []T, id models.ID) []T {
	return slices.DeleteFunc(slices.Clone(items), func(e T) bool { return e.EntityID() == id })
}

func (a *Admin) AddEducation(ctx context.Context, e models.Education) (models.Education, error) {
	return addEntity(ctx, a, educations, e, a.client.CreateEducation)
}

func (a *Admin) UpdateEducation(ctx context.Context, e models.Education) (models.Education, error) {
	return updateEntity(ctx, a, educations, e, a.client.UpdateEducation)
}

func (a *Admin) DeleteEducation(ctx context.Context, id models.ID) error {
	return deleteEntity(ctx, a, educations, id, a.client.DeleteEducation)
}

func (a *Admin) AddSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	return addEntity(ctx, a, skills, s, a.client.CreateSkill)
}

func (a *Admin) UpdateSkill(ctx context.Context, s models.Skill) (models.Skill, error) {
	return updateEntity(ctx, a, skills, s, a.client.UpdateSkill)
}

func (a *Admin) DeleteSkill(ctx context.Context, id models.ID) error {
	return deleteEntity(ctx, a, skills, id, a.client.DeleteSkill)
}

func (a *Admin) AddProject(ctx context.Context, p models.Project) (models.Project, error) {
	return addEntity(ctx, a, projects, p, a.client.CreateProject)
}

func (a *Admin) UpdateProject(ctx context.Context, p models.Project) (models.Project, error) {
	return updateEntity(ctx, a, projects, p, a.client.UpdateProject)
}

func (a *Admin) DeleteProject(ctx context.Context, id models.ID) error {
	return deleteEntity(ctx, a, projects, id, a.client.DeleteProject)
}

// Project fetches one project through the public endpoint. The container's
// state is not touched.
func (a *Admin) Project(ctx context.Context, id models.ID) (*models.Project, error) {
	if id.IsZero() {
		return nil, common.ErrMissingID
	}
	return a.client.GetProject(ctx, id)
}

func (a *Admin) AddExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	return addEntity(ctx, a, experiences, e, a.client.CreateExperience)
}

func (a *Admin) UpdateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	return updateEntity(ctx, a, experiences, e, a.client.UpdateExperience)
}

func (a *Admin) DeleteExperience(ctx context.Context, id models.ID) error {
	return deleteEntity(ctx, a, experiences, id, a.client.DeleteExperience)
}

func (a *Admin) AddSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	return addEntity(ctx, a, socialLinks, l, a.client.CreateSocialLink)
}

func (a *Admin) UpdateSocialLink(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	return updateEntity(ctx, a, socialLinks, l, a.client.UpdateSocialLink)
}

func (a *Admin) DeleteSocialLink(ctx context.Context, id models.ID) error {
	return deleteEntity(ctx, a, socialLinks, id, a.client.DeleteSocialLink)
}

// AddProfile creates the profile and stores the server's version in the
// profile slot. It refuses with common.ErrProfileExists, without a request,
// while a profile is loaded.
func (a *Admin) AddProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	a.mu.RLock()
	exists := a.data.profile != nil
	a.mu.RUnlock()
	if exists {
		return models.Profile{}, common.ErrProfileExists
	}

	gen := a.generation()

	created, err := a.client.CreateProfile(ctx, p)
	if err != nil {
		return models.Profile{}, err
	}

	a.apply(gen, func() { a.data.profile = &created })
	return created, nil
}

func (a *Admin) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	if p.ID.IsZero() {
		return models.Profile{}, common.ErrMissingID
	}
	gen := a.generation()

	updated, err := a.client.UpdateProfile(ctx, p)
	if err != nil {
		return models.Profile{}, err
	}
	if updated.ID.IsZero() {
		updated = p
	}

	a.apply(gen, func() { a.data.profile = &updated })
	return updated, nil
}

// DeleteProfile deletes the loaded profile. Without a loaded profile carrying
// an id it fails with common.ErrNoProfile and makes no request.
func (a *Admin) DeleteProfile(ctx context.Context) error {
	a.mu.RLock()
	var id models.ID
	if a.data.profile != nil {
		id = a.data.profile.ID
	}
	gen := a.gen
	a.mu.RUnlock()

	if id.IsZero() {
		return common.ErrNoProfile
	}

	if err := a.client.DeleteProfile(ctx, id); err != nil {
		return err
	}

	a.apply(gen, func() {
		if a.data.profile != nil && a.data.profile.ID == id {
			a.data.profile = nil
		}
	})
	return nil
}
