// Package artworks owns the artworks collection: the published, publicly
// visible catalog entries. New records arrive either through an admin-only
// import or through promotion of an approved submission; both paths go
// through Create, which always assigns a fresh id.
package artworks

import (
	"context"

	"artcatalog/internal/server/models"
)

// CreateParams carries the content fields of a new artwork. Status is not a
// parameter: everything in this collection is approved.
type CreateParams struct {
	Title         string
	Type          string
	Artist        string
	Period        string
	Description   string
	Location      string
	ImageURL      string
	ConditionNote string
	SubmittedBy   int64
}

type Repository interface {
	// List returns artworks in insertion order, optionally filtered by
	// status. An empty status returns the whole collection.
	List(ctx context.Context, status models.ArtworkStatus) ([]models.Artwork, error)

	GetByID(ctx context.Context, id int64) (*models.Artwork, error)

	Create(ctx context.Context, p CreateParams) (*models.Artwork, error)
}
