package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

func TestRepository_RoundTripsTypedRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewRepository[models.Project](store, models.ResourceProjects)

	assert.Equal(t, models.ResourceProjects, repo.Kind())

	p := models.Project{ID: "p1", Title: "Site", Description: "d", DemoURL: models.StringPtr("https://demo"), Technologies: []string{"go"}}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.Title = "Site v2"
	require.NoError(t, repo.Update(ctx, p))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Project{p}, all)

	require.NoError(t, repo.Delete(ctx, "p1"))
	_, err = repo.Get(ctx, "p1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRepository_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, models.ResourceSkills, "s1", json.RawMessage(`{"id":"s1","category":"MAGIC"}`)))

	repo := NewRepository[models.Skill](store, models.ResourceSkills)

	_, err := repo.List(ctx)
	require.Error(t, err)

	_, err = repo.Get(ctx, "s1")
	require.Error(t, err)
}
