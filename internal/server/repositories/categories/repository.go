// Package categories owns the categories collection. Categories are
// admin-managed; there is no update operation, only create and delete.
package categories

import (
	"context"

	"artcatalog/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Category, error)

	// Create persists a new category. The name must be unique; duplicates
	// return common.ErrConflict. Name validation happens at the service
	// boundary before this call.
	Create(ctx context.Context, name, description string) (*models.Category, error)

	// Delete removes a category by id and compacts the collection. Ids of
	// remaining categories are never renumbered.
	Delete(ctx context.Context, id int64) error
}
