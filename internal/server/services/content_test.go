package services

import (
	"context"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolio/internal/common"
	wire "github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
)

func newSkillService(c *cache.Cache) (*ContentService[wire.Skill, *wire.Skill], *repomanager.MemoryRepositoryManager) {
	m := repomanager.NewMemoryRepositoryManager()
	return NewContentService[wire.Skill](nil, m, wire.ResourceSkills, c), m
}

func TestContentService_CRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := newSkillService(nil)
	assert.Equal(t, wire.ResourceSkills, s.Kind())

	created, err := s.Create(ctx, wire.Skill{ID: "ignored", Name: "Go", Category: wire.SkillTechnical})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.NotEqual(t, wire.ID("ignored"), created.ID)

	got, err := s.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := s.Update(ctx, created.ID.String(), wire.Skill{Name: "Golang", Category: wire.SkillTechnical})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Golang", items[0].Name)

	require.NoError(t, s.Delete(ctx, created.ID.String()))

	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentService_ValidationAndMissing(t *testing.T) {
	ctx := context.Background()
	s, _ := newSkillService(nil)

	_, err := s.Create(ctx, wire.Skill{Category: wire.SkillTechnical})
	assert.ErrorIs(t, err, wire.ErrValidation)

	_, err = s.Update(ctx, "nope", wire.Skill{Name: "Go", Category: wire.SkillSoft})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Get(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "nope"), common.ErrorNotFound)
}

func TestContentService_ListIsCachedUntilMutation(t *testing.T) {
	ctx := context.Background()
	c := cache.New(time.Minute, 2*time.Minute)
	s, m := newSkillService(c)

	_, err := s.Create(ctx, wire.Skill{Name: "Go", Category: wire.SkillTechnical})
	require.NoError(t, err)

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// запись в обход сервиса кэш не сбрасывает
	other := NewContentService[wire.Skill](nil, m, wire.ResourceSkills, nil)
	_, err = other.Create(ctx, wire.Skill{Name: "SQL", Category: wire.SkillTechnical})
	require.NoError(t, err)

	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// изменение вызывающим не портит кэш
	items[0].Name = "mutated"
	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Go", again[0].Name)

	_, err = s.Create(ctx, wire.Skill{Name: "Docker", Category: wire.SkillFramework})
	require.NoError(t, err)

	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestContentService_MutationDuringListIsNotCached(t *testing.T) {
	ctx := context.Background()
	m := &hookManager{MemoryRepositoryManager: repomanager.NewMemoryRepositoryManager()}
	s := NewContentService[wire.Skill](nil, m, wire.ResourceSkills, cache.New(time.Minute, 2*time.Minute))

	// запись успевает между чтением из хранилища и заполнением кэша
	m.afterList = func() {
		_, err := s.Create(ctx, wire.Skill{Name: "Go", Category: wire.SkillTechnical})
		require.NoError(t, err)
	}

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Go", items[0].Name)
}

func TestContentService_StorageError(t *testing.T) {
	s := NewContentService[wire.Project](nil, brokenManager{}, wire.ResourceProjects, cache.New(time.Minute, time.Minute))

	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, errBoom)

	_, err = s.Create(context.Background(), wire.Project{Title: "Site", Description: "d"})
	assert.ErrorIs(t, err, errBoom)
}
