package artworks

import (
	"context"
	"time"

	"artcatalog/internal/common"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/store"
)

const collection = "artworks"

type JSONFileRepository struct {
	store *store.Store
}

func NewJSONFileRepository(s *store.Store) *JSONFileRepository {
	return &JSONFileRepository{store: s}
}

func (r *JSONFileRepository) List(ctx context.Context, status models.ArtworkStatus) ([]models.Artwork, error) {
	records, err := store.Load[models.Artwork](r.store, collection)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return records, nil
	}
	filtered := make([]models.Artwork, 0, len(records))
	for _, a := range records {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (r *JSONFileRepository) GetByID(ctx context.Context, id int64) (*models.Artwork, error) {
	records, err := store.Load[models.Artwork](r.store, collection)
	if err != nil {
		return nil, err
	}
	for _, a := range records {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *JSONFileRepository) Create(ctx context.Context, p CreateParams) (*models.Artwork, error) {
	var created models.Artwork

	_, err := store.Update(r.store, collection, func(records []models.Artwork) ([]models.Artwork, error) {
		created = models.Artwork{
			ID:            store.NextID(records),
			Title:         p.Title,
			Type:          p.Type,
			Artist:        p.Artist,
			Period:        p.Period,
			Description:   p.Description,
			Location:      p.Location,
			ImageURL:      p.ImageURL,
			ConditionNote: p.ConditionNote,
			Status:        models.ArtworkStatusApproved,
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

var _ Repository = (*JSONFileRepository)(nil)
