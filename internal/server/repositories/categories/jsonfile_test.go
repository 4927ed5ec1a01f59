package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artcatalog/internal/common"
	"artcatalog/internal/server/store"
)

func newTestRepo(t *testing.T) *JSONFileRepository {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewJSONFileRepository(s)
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	c1, err := repo.Create(ctx, "Rock Art", "Paintings and engravings on rock surfaces")
	require.NoError(t, err)
	c2, err := repo.Create(ctx, "Pottery", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), c1.ID)
	assert.Equal(t, int64(2), c2.ID)
}

func TestCreate_DuplicateNameConflicts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Pottery", "")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Pottery", "duplicate")
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestDelete_CompactsWithoutRenumbering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Rock Art", "Pottery", "Textile"} {
		_, err := repo.Create(ctx, name, "")
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, 2))

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, int64(1), remaining[0].ID)
	assert.Equal(t, int64(3), remaining[1].ID)

	// a new category takes the next id, never a deleted one
	c, err := repo.Create(ctx, "Carving", "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.ID)
}

func TestDelete_MissingCategory(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
