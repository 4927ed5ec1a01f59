package submissions

import (
	"context"
	"time"

	"artcatalog/internal/common"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/store"
)

const collection = "submissions"

type JSONFileRepository struct {
	store *store.Store
}

func NewJSONFileRepository(s *store.Store) *JSONFileRepository {
	return &JSONFileRepository{store: s}
}

func (f Filter) matches(s models.Submission) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.SubmittedBy != 0 && s.SubmittedBy != f.SubmittedBy {
		return false
	}
	return true
}

func (r *JSONFileRepository) List(ctx context.Context, f Filter) ([]models.Submission, error) {
	records, err := store.Load[models.Submission](r.store, collection)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Submission, 0, len(records))
	for _, s := range records {
		if f.matches(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (r *JSONFileRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	records, err := store.Load[models.Submission](r.store, collection)
	if err != nil {
		return nil, err
	}
	for _, s := range records {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *JSONFileRepository) Create(ctx context.Context, p CreateParams) (*models.Submission, error) {
	var created models.Submission

	_, err := store.Update(r.store, collection, func(records []models.Submission) ([]models.Submission, error) {
		created = models.Submission{
			ID:            store.NextID(records),
			Title:         p.Title,
			Type:          p.Type,
			Artist:        p.Artist,
			Period:        p.Period,
			Description:   p.Description,
			Location:      p.Location,
			ImageURL:      p.ImageURL,
			ConditionNote: p.ConditionNote,
			Status:        models.SubmissionStatusPending,
			SubmittedBy:   p.SubmittedBy,
			CreatedAt:     time.Now().UTC(),
		}
		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *JSONFileRepository) UpdateStatus(ctx context.Context, id int64, status models.SubmissionStatus) (*models.Submission, error) {
	var updated models.Submission

	_, err := store.Update(r.store, collection, func(records []models.Submission) ([]models.Submission, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Status = status
				updated = records[i]
				return records, nil
			}
		}
		return nil, common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

var _ Repository = (*JSONFileRepository)(nil)
