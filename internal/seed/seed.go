// Package seed populates a fresh data directory with the starter catalog:
// a default admin, a sample contributor, two approved artworks, one pending
// submission and the initial categories. Collections that already hold data
// are left untouched, so seeding an existing installation is safe.
package seed

import (
	"context"
	"fmt"

	"artcatalog/internal/server/auth"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repomanager"
	"artcatalog/internal/server/repositories/artworks"
	"artcatalog/internal/server/repositories/categories"
	"artcatalog/internal/server/repositories/submissions"
	"artcatalog/internal/server/repositories/users"
)

// Default development credentials. Change them after the first login.
const (
	AdminUsername       = "admin"
	AdminPassword       = "admin123"
	ContributorUsername = "user1"
	ContributorPassword = "user123"
)

// Apply seeds every empty collection. It returns the work actually done so
// callers can report what was skipped.
func Apply(ctx context.Context, m repomanager.Manager) error {
	contributorID, err := seedUsers(ctx, m.Users())
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedArtworks(ctx, m.Artworks(), contributorID); err != nil {
		return fmt.Errorf("seed artworks: %w", err)
	}
	if err := seedSubmissions(ctx, m.Submissions(), contributorID); err != nil {
		return fmt.Errorf("seed submissions: %w", err)
	}
	if err := seedCategories(ctx, m.Categories()); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, repo users.Repository) (int64, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		// Keep referencing the first non-admin user for the other seeds.
		for _, u := range existing {
			if u.Role != models.RoleAdmin {
				return u.ID, nil
			}
		}
		return existing[0].ID, nil
	}

	adminHash, err := auth.HashPassword(AdminPassword)
	if err != nil {
		return 0, err
	}
	if _, err := repo.Create(ctx, users.CreateParams{
		Username:     AdminUsername,
		Email:        "admin@artcatalog.local",
		PasswordHash: adminHash,
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
	}); err != nil {
		return 0, err
	}

	contributorHash, err := auth.HashPassword(ContributorPassword)
	if err != nil {
		return 0, err
	}
	contributor, err := repo.Create(ctx, users.CreateParams{
		Username:     ContributorUsername,
		Email:        "user1@artcatalog.local",
		PasswordHash: contributorHash,
		Role:         models.RoleGeneral,
		Status:       models.UserStatusActive,
	})
	if err != nil {
		return 0, err
	}
	return contributor.ID, nil
}

func seedArtworks(ctx context.Context, repo artworks.Repository, contributorID int64) error {
	existing, err := repo.List(ctx, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	samples := []artworks.CreateParams{
		{
			Title:         "Ancient Cave Painting",
			Type:          "Rock Art",
			Artist:        "Unknown",
			Period:        "c. 5000 BCE",
			Description:   "Ancient cave paintings depicting hunting scenes and daily life.",
			Location:      "Northern Territory, Australia",
			ConditionNote: "Weathered but stable",
			SubmittedBy:   contributorID,
		},
		{
			Title:         "Traditional Pottery Vessel",
			Type:          "Pottery",
			Artist:        "Maria Santos",
			Period:        "c. 1800 CE",
			Description:   "Ceremonial pottery vessel with traditional geometric patterns.",
			Location:      "Southwestern United States",
			ConditionNote: "Minor chips on the rim",
			SubmittedBy:   contributorID,
		},
	}
	for _, p := range samples {
		if _, err := repo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedSubmissions(ctx context.Context, repo submissions.Repository, contributorID int64) error {
	existing, err := repo.List(ctx, submissions.Filter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	_, err = repo.Create(ctx, submissions.CreateParams{
		Title:       "New Rock Art Discovery",
		Type:        "Rock Art",
		Artist:      "Unknown",
		Period:      "c. 3000 BCE",
		Description: "Recently discovered rock art panel awaiting verification.",
		Location:    "Kimberley, Australia",
		SubmittedBy: contributorID,
	})
	return err
}

func seedCategories(ctx context.Context, repo categories.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	samples := []struct{ name, description string }{
		{"Rock Art", "Prehistoric paintings and carvings on natural stone"},
		{"Pottery", "Ceramic vessels and figurines"},
		{"Textile", "Woven fabrics, baskets and fiber art"},
	}
	for _, c := range samples {
		if _, err := repo.Create(ctx, c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}
