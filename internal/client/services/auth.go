package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

// Login authenticates, persists the session and loads every collection.
// Only ADMIN accounts are accepted. On any failure the container is left
// unauthenticated and empty; the cause is logged, not returned.
func (a *Admin) Login(ctx context.Context, username, password string) bool {
	if err := a.login(ctx, username, password); err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "error", err)
		a.Logout(ctx)
		return false
	}
	a.log.Info(ctx, "logged in", "username", username)
	return true
}

func (a *Admin) login(ctx context.Context, username, password string) error {
	gen := a.generation()

	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if !resp.User.Role.IsAdmin() {
		return fmt.Errorf("%w: role %q", common.ErrForbiddenRole, resp.User.Role)
	}

	if err := a.store.Save(ctx, resp.Token, resp.User); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	data, err := a.fetchAll(ctx)
	if err != nil {
		return fmt.Errorf("initial refresh error: %w", err)
	}

	user := resp.User
	if !a.apply(gen, func() {
		a.state = StateAuthenticated
		a.user = &user
		a.data = *data
	}) {
		return errors.New("logged out while logging in")
	}
	return nil
}

// Logout clears the stored session and every collection. It is idempotent
// and cannot fail; a session store error is only logged.
func (a *Admin) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
	}

	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	a.gen++
	a.state = StateUnauthenticated
	a.user = nil
	a.data = content{}
	snap := a.snapshotLocked()
	a.mu.Unlock()

	a.publish(snap)
}

// Refresh refetches all seven collections concurrently and replaces them.
// Any failure is treated as an invalid session: the container logs out and
// the error is returned.
func (a *Admin) Refresh(ctx context.Context) error {
	if !a.Authenticated() {
		return client.ErrUnauthorized
	}
	gen := a.generation()

	data, err := a.fetchAll(ctx)
	if err != nil {
		a.log.Warn(ctx, "refresh failed, logging out", "error", err)
		a.Logout(ctx)
		return err
	}

	a.apply(gen, func() { a.data = *data })
	return nil
}

// Restore re-establishes a stored ADMIN session at startup. The container is
// marked authenticated before the first refresh, which logs out again if the
// token turns out to be stale.
func (a *Admin) Restore(ctx context.Context) bool {
	sess, ok := a.store.Restore(ctx)
	if !ok {
		return false
	}
	if !sess.User.Role.IsAdmin() {
		a.log.Warn(ctx, "stored session is not an admin session", "username", sess.User.Username)
		return false
	}

	user := sess.User
	a.apply(a.generation(), func() {
		a.state = StateAuthenticated
		a.user = &user
	})

	if err := a.Refresh(ctx); err != nil {
		return false
	}
	a.log.Info(ctx, "session restored", "username", user.Username)
	return true
}

// fetchAll loads every collection concurrently. The first failure cancels
// the remaining requests.
func (a *Admin) fetchAll(ctx context.Context) (*content, error) {
	var c content
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		c.profile, err = a.client.GetProfile(ctx)
		return wrapFetch(models.ResourceProfiles, err)
	})
	g.Go(func() (err error) {
		c.educations, err = a.client.ListEducations(ctx)
		return wrapFetch(models.ResourceEducations, err)
	})
	g.Go(func() (err error) {
		c.skills, err = a.client.ListSkills(ctx)
		return wrapFetch(models.ResourceSkills, err)
	})
	g.Go(func() (err error) {
		c.projects, err = a.client.ListProjects(ctx)
		return wrapFetch(models.ResourceProjects, err)
	})
	g.Go(func() (err error) {
		c.experiences, err = a.client.ListExperiences(ctx)
		return wrapFetch(models.ResourceExperiences, err)
	})
	g.Go(func() (err error) {
		c.socialLinks, err = a.client.ListSocialLinks(ctx)
		return wrapFetch(models.ResourceSocialLinks, err)
	})
	g.Go(func() (err error) {
		c.messages, err = a.client.ListMessages(ctx)
		return wrapFetch(models.ResourceContact, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}

func wrapFetch(res models.Resource, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("fetch %s: %w", res, err)
}
