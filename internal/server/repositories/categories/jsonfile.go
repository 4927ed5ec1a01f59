package categories

import (
	"context"

	"artcatalog/internal/common"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/store"
)

const collection = "categories"

type JSONFileRepository struct {
	store *store.Store
}

func NewJSONFileRepository(s *store.Store) *JSONFileRepository {
	return &JSONFileRepository{store: s}
}

func (r *JSONFileRepository) List(ctx context.Context) ([]models.Category, error) {
	return store.Load[models.Category](r.store, collection)
}

func (r *JSONFileRepository) Create(ctx context.Context, name, description string) (*models.Category, error) {
	var created models.Category

	_, err := store.Update(r.store, collection, func(records []models.Category) ([]models.Category, error) {
		for _, c := range records {
			if c.Name == name {
				return nil, common.ErrConflict
			}
		}
		created = models.Category{
			ID:          store.NextID(records),
			Name:        name,
			Description: description,
		}
		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *JSONFileRepository) Delete(ctx context.Context, id int64) error {
	_, err := store.Update(r.store, collection, func(records []models.Category) ([]models.Category, error) {
		for i, c := range records {
			if c.ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, common.ErrNotFound
	})
	return err
}

var _ Repository = (*JSONFileRepository)(nil)
