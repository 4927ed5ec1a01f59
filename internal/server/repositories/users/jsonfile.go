package users

import (
	"context"
	"time"

	"artcatalog/internal/common"
	"artcatalog/internal/server/auth"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/store"
)

const collection = "users"

// record is the on-disk shape of a user. It is private to this package so
// the password hash stays behind the repository boundary.
type record struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Password  string            `json:"password"`
	Role      models.Role       `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

func (r record) RecordID() int64 { return r.ID }

func (r record) toModel() *models.User {
	return &models.User{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		Role:      r.Role,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

func (r record) matchesLogin(login string) bool {
	return r.Username == login || r.Email == login
}

type JSONFileRepository struct {
	store *store.Store
}

func NewJSONFileRepository(s *store.Store) *JSONFileRepository {
	return &JSONFileRepository{store: s}
}

func (r *JSONFileRepository) Create(ctx context.Context, p CreateParams) (*models.User, error) {
	var created record

	_, err := store.Update(r.store, collection, func(records []record) ([]record, error) {
		for _, rec := range records {
			if rec.Username == p.Username || rec.Email == p.Email {
				return nil, common.ErrConflict
			}
		}
		created = record{
			ID:        store.NextID(records),
			Username:  p.Username,
			Email:     p.Email,
			Password:  p.PasswordHash,
			Role:      p.Role,
			Status:    p.Status,
			CreatedAt: time.Now().UTC(),
		}
		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}
	return created.toModel(), nil
}

func (r *JSONFileRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	records, err := store.Load[record](r.store, collection)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toModel(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *JSONFileRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	records, err := store.Load[record](r.store, collection)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.matchesLogin(login) {
			return rec.toModel(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *JSONFileRepository) VerifyCredentials(ctx context.Context, login, password string) (*models.User, error) {
	records, err := store.Load[record](r.store, collection)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.matchesLogin(login) && auth.CheckPassword(password, rec.Password) {
			return rec.toModel(), nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

func (r *JSONFileRepository) List(ctx context.Context) ([]models.User, error) {
	records, err := store.Load[record](r.store, collection)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, *rec.toModel())
	}
	return users, nil
}

func (r *JSONFileRepository) UpdateRole(ctx context.Context, id int64, role models.Role) (*models.User, error) {
	return r.update(id, func(rec *record) { rec.Role = role })
}

func (r *JSONFileRepository) UpdateStatus(ctx context.Context, id int64, status models.UserStatus) (*models.User, error) {
	return r.update(id, func(rec *record) { rec.Status = status })
}

func (r *JSONFileRepository) update(id int64, mutate func(*record)) (*models.User, error) {
	var updated record

	_, err := store.Update(r.store, collection, func(records []record) ([]record, error) {
		for i := range records {
			if records[i].ID == id {
				mutate(&records[i])
				updated = records[i]
				return records, nil
			}
		}
		return nil, common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated.toModel(), nil
}

var _ Repository = (*JSONFileRepository)(nil)
