package services

import (
	"context"
	"strings"

	"artcatalog/internal/common"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repositories/artworks"
	"artcatalog/internal/server/repositories/categories"
	"artcatalog/internal/server/repositories/users"
)

// AdminService groups the admin-only mutations: user role and status
// management, category management, and direct artwork import. Authorization
// happens at the boundary via AuthService.RequireAdmin; these methods assume
// an admin caller.
type AdminService struct {
	users      users.Repository
	artworks   artworks.Repository
	categories categories.Repository
}

func NewAdminService(u users.Repository, a artworks.Repository, c categories.Repository) *AdminService {
	return &AdminService{users: u, artworks: a, categories: c}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// UpdateUserRole sets a user's role. The role is checked against the closed
// enumeration here, before it can reach the repository.
func (s *AdminService) UpdateUserRole(ctx context.Context, id int64, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, &common.ValidationError{Violations: []string{"invalid role"}}
	}
	return s.users.UpdateRole(ctx, id, role)
}

// UpdateUserStatus activates or suspends an account.
func (s *AdminService) UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) (*models.User, error) {
	if !status.Valid() {
		return nil, &common.ValidationError{Violations: []string{"invalid status"}}
	}
	return s.users.UpdateStatus(ctx, id, status)
}

// CreateCategory rejects an empty name; duplicate names surface as
// ErrConflict from the repository.
func (s *AdminService) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &common.ValidationError{Violations: []string{"category name is required"}}
	}
	return s.categories.Create(ctx, name, description)
}

func (s *AdminService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

// ImportArtwork creates an approved artwork directly, bypassing moderation.
// This is the admin-only import path; user content goes through Submit.
func (s *AdminService) ImportArtwork(ctx context.Context, adminID int64, in ArtworkInput) (*models.Artwork, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	artist := in.Artist
	if strings.TrimSpace(artist) == "" {
		artist = "Unknown"
	}

	return s.artworks.Create(ctx, artworks.CreateParams{
		Title:         in.Title,
		Type:          in.Type,
		Artist:        artist,
		Period:        in.Period,
		Description:   in.Description,
		Location:      in.Location,
		ImageURL:      in.ImageURL,
		ConditionNote: in.ConditionNote,
		SubmittedBy:   adminID,
	})
}
