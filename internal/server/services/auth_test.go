package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artcatalog/internal/common"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repomanager"
	"artcatalog/internal/server/sessions"
)

func newTestManager(t *testing.T) *repomanager.JSONFileManager {
	t.Helper()
	m, err := repomanager.NewJSONFileManager(t.TempDir())
	require.NoError(t, err)
	return m
}

func newTestAuth(t *testing.T) (*AuthService, *repomanager.JSONFileManager) {
	t.Helper()
	m := newTestManager(t)
	return NewAuthService(m.Users(), sessions.NewMemoryStore()), m
}

func validRegistration() RegisterParams {
	return RegisterParams{
		Username:        "maria",
		Email:           "maria@example.com",
		Password:        "potter123",
		ConfirmPassword: "potter123",
	}
}

func TestRegister_CreatesActiveGeneralUserAndLogsIn(t *testing.T) {
	svc, _ := newTestAuth(t)

	user, token, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Equal(t, models.RoleGeneral, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)
	require.NotEmpty(t, token, "registration must auto-login")

	session, err := svc.RequireAuth(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
}

func TestRegister_AggregatesAllViolations(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, _, err := svc.Register(context.Background(), RegisterParams{
		Username:        "",
		Email:           "not-an-email",
		Password:        "abc",
		ConfirmPassword: "xyz",
	})
	require.Error(t, err)

	ve, ok := common.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Violations, 4)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	p := validRegistration()
	p.Username = "othername"
	_, _, err = svc.Register(ctx, p)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	p := validRegistration()
	p.Email = "other@example.com"
	_, _, err = svc.Register(ctx, p)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestLogin_ByUsernameAndByEmail(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "maria", "potter123")
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "maria@example.com", "potter123")
	require.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "maria", "wrongpass")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	svc, m := newTestAuth(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = m.Users().UpdateStatus(ctx, user.ID, models.UserStatusSuspended)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "maria", "potter123")
	assert.ErrorIs(t, err, common.ErrAccountInactive)
}

func TestLogout_DestroysSession(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, token, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	svc.Logout(token)

	_, err = svc.RequireAuth(token)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()

	created, token, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.CurrentUser(ctx, "bogus-token")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestRequireAdmin(t *testing.T) {
	svc, m := newTestAuth(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.RequireAdmin(token)
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = m.Users().UpdateRole(ctx, user.ID, models.RoleAdmin)
	require.NoError(t, err)

	// the session carries the role it was issued with, so log in again
	_, adminToken, err := svc.Login(ctx, "maria", "potter123")
	require.NoError(t, err)

	session, err := svc.RequireAdmin(adminToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Role)

	_, err = svc.RequireAdmin("bogus")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}
