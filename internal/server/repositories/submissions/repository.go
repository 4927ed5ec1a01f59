// Package submissions owns the submissions collection. Submissions always
// enter as pending; status transitions are decided by the moderation service
// and persisted here via UpdateStatus.
package submissions

import (
	"context"

	"artcatalog/internal/server/models"
)

// CreateParams carries the content fields of a new submission.
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

// Filter narrows List results. Zero values mean "no filter".
type Filter struct {
	Status      models.SubmissionStatus
	SubmittedBy int64
}

type Repository interface {
	// List returns submissions in insertion order, narrowed by the filter.
	List(ctx context.Context, f Filter) ([]models.Submission, error)

	GetByID(ctx context.Context, id int64) (*models.Submission, error)

	// Create persists a new submission with status pending.
	Create(ctx context.Context, p CreateParams) (*models.Submission, error)

	// UpdateStatus sets the status field in place. Transition legality is the
	// moderation service's concern, not this repository's.
	UpdateStatus(ctx context.Context, id int64, status models.SubmissionStatus) (*models.Submission, error)
}
