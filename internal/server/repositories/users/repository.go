// Package users owns the users collection. The stored password hash never
// crosses this package's boundary: lookups return models.User (which has no
// credential field) and the credential check itself happens inside
// VerifyCredentials.
package users

import (
	"context"

	"artcatalog/internal/server/models"
)

// CreateParams carries the fields needed to persist a new user. PasswordHash
// must already be hashed; this repository never sees a plaintext password
// except inside VerifyCredentials.
type CreateParams struct {
	Username     string
	Email        string
	PasswordHash string
	Role         models.Role
	Status       models.UserStatus
}

type Repository interface {
	// Create persists a new user, assigning the next id. Returns
	// common.ErrConflict when the username or email is already taken.
	Create(ctx context.Context, p CreateParams) (*models.User, error)

	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByLogin resolves a user by username or email.
	GetByLogin(ctx context.Context, login string) (*models.User, error)

	// VerifyCredentials resolves a user by username or email and checks the
	// password against the stored hash. Returns common.ErrInvalidCredentials
	// when either step fails, without distinguishing which.
	VerifyCredentials(ctx context.Context, login, password string) (*models.User, error)

	List(ctx context.Context) ([]models.User, error)

	UpdateRole(ctx context.Context, id int64, role models.Role) (*models.User, error)

	UpdateStatus(ctx context.Context, id int64, status models.UserStatus) (*models.User, error)
}
