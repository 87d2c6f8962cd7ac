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

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	var _ Store = s

	docs, err := s.List(ctx, models.ResourceSkills)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)

	require.NoError(t, s.Create(ctx, models.ResourceSkills, "a", json.RawMessage(`{"id":"a"}`)))
	require.NoError(t, s.Create(ctx, models.ResourceSkills, "b", json.RawMessage(`{"id":"b"}`)))
	require.NoError(t, s.Create(ctx, models.ResourceProjects, "a", json.RawMessage(`{"id":"a","title":"p"}`)))
	require.ErrorIs(t, s.Create(ctx, models.ResourceSkills, "a", json.RawMessage(`{}`)), common.ErrorAlreadyExists)

	docs, err = s.List(ctx, models.ResourceSkills)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.JSONEq(t, `{"id":"a"}`, string(docs[0]), "insertion order")

	require.NoError(t, s.Update(ctx, models.ResourceSkills, "a", json.RawMessage(`{"id":"a","name":"Go"}`)))
	doc, err := s.Get(ctx, models.ResourceSkills, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","name":"Go"}`, string(doc))

	// изменение возвращённого буфера не портит хранилище
	doc[0] = 'X'
	doc, err = s.Get(ctx, models.ResourceSkills, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","name":"Go"}`, string(doc))

	require.NoError(t, s.Delete(ctx, models.ResourceSkills, "a"))
	_, err = s.Get(ctx, models.ResourceSkills, "a")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, s.Delete(ctx, models.ResourceSkills, "a"), common.ErrorNotFound)
	require.ErrorIs(t, s.Update(ctx, models.ResourceSkills, "zz", json.RawMessage(`{}`)), common.ErrorNotFound)

	_, err = s.Get(ctx, models.ResourceProjects, "a")
	require.NoError(t, err, "kinds are separate namespaces")
}
