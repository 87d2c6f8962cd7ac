package handlers

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"

	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/http/apierrors"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
)

// ContentRoutes registers the endpoints of one content collection.
type ContentRoutes interface {
	Mount(r chi.Router, admin func(http.Handler) http.Handler)
}

// NewContentSet builds the routes of every portfolio collection over one
// storage and one list cache.
func NewContentSet(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache) []ContentRoutes {
	return []ContentRoutes{
		NewContent(services.NewContentService[models.Profile](db, m, models.ResourceProfiles, c)),
		NewContent(services.NewContentService[models.Education](db, m, models.ResourceEducations, c)),
		NewContent(services.NewContentService[models.Skill](db, m, models.ResourceSkills, c)),
		NewContent(services.NewContentService[models.Project](db, m, models.ResourceProjects, c)),
		NewContent(services.NewContentService[models.Experience](db, m, models.ResourceExperiences, c)),
		NewContent(services.NewContentService[models.SocialLink](db, m, models.ResourceSocialLinks, c)),
	}
}

// Content serves one collection:
//
//	GET  /{kind}              public list
//	GET  /{kind}/{id}         public single record
//	POST /{kind}/create       admin
//	POST /{kind}/update/{id}  admin
//	POST /{kind}/delete/{id}  admin
type Content[T models.Entity, P services.Record[T]] struct {
	svc *services.ContentService[T, P]
}

func NewContent[T models.Entity, P services.Record[T]](svc *services.ContentService[T, P]) *Content[T, P] {
	return &Content[T, P]{svc: svc}
}

func (c *Content[T, P]) Mount(r chi.Router, admin func(http.Handler) http.Handler) {
	base := "/" + string(c.svc.Kind())

	r.Get(base, c.List)
	r.Get(base+"/{id}", c.Get)

	r.With(admin).Post(base+"/create", c.Create)
	r.With(admin).Post(base+"/update/{id}", c.Update)
	r.With(admin).Post(base+"/delete/{id}", c.Delete)
}

func (c *Content[T, P]) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.List(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "ok", items)
}

func (c *Content[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	item, err := c.svc.Get(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "ok", item)
}

func (c *Content[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	var in T
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	item, err := c.svc.Create(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, "created", item)
}

func (c *Content[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in T
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	item, err := c.svc.Update(r.Context(), id, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "updated", item)
}

func (c *Content[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := c.svc.Delete(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "deleted", nil)
}
