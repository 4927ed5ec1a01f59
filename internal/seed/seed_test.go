package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repomanager"
	"artcatalog/internal/server/repositories/submissions"
	"artcatalog/internal/server/repositories/users"
)

func newManager(t *testing.T) *repomanager.JSONFileManager {
	t.Helper()
	m, err := repomanager.NewJSONFileManager(t.TempDir())
	require.NoError(t, err)
	return m
}

func TestApply_FreshDirectory(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, m))

	allUsers, err := m.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, allUsers, 2)
	assert.Equal(t, models.RoleAdmin, allUsers[0].Role)
	assert.Equal(t, models.RoleGeneral, allUsers[1].Role)

	admin, err := m.Users().VerifyCredentials(ctx, AdminUsername, AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	arts, err := m.Artworks().List(ctx, models.ArtworkStatusApproved)
	require.NoError(t, err)
	require.Len(t, arts, 2)
	assert.Equal(t, "Ancient Cave Painting", arts[0].Title)
	assert.Equal(t, "Traditional Pottery Vessel", arts[1].Title)

	subs, err := m.Submissions().List(ctx, submissions.Filter{})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, models.SubmissionStatusPending, subs[0].Status)
	assert.Equal(t, allUsers[1].ID, subs[0].SubmittedBy)

	cats, err := m.Categories().List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 3)
}

func TestApply_Idempotent(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, m))
	require.NoError(t, Apply(ctx, m))

	allUsers, err := m.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, allUsers, 2)

	subs, err := m.Submissions().List(ctx, submissions.Filter{})
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestApply_KeepsExistingUsers(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	existing, err := m.Users().Create(ctx, users.CreateParams{
		Username:     "curator",
		Email:        "curator@example.com",
		PasswordHash: "x",
		Role:         models.RoleGeneral,
		Status:       models.UserStatusActive,
	})
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, m))

	allUsers, err := m.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, allUsers, 1)

	// the seeded submission references the pre-existing contributor
	subs, err := m.Submissions().List(ctx, submissions.Filter{})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, existing.ID, subs[0].SubmittedBy)
}
