package services

import (
	"context"
	"strings"

	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repositories/artworks"
	"artcatalog/internal/server/repositories/categories"
	"artcatalog/internal/server/repositories/submissions"
	"artcatalog/internal/server/repositories/users"
	"artcatalog/internal/server/sessions"
)

// QueryService is the read side of the catalog: browsing, search, similar
// lookups, submission visibility and admin statistics. Nothing here mutates
// the store and nothing is cached; every call reads fresh.
type QueryService struct {
	artworks    artworks.Repository
	submissions submissions.Repository
	users       users.Repository
	categories  categories.Repository
}

func NewQueryService(a artworks.Repository, s submissions.Repository, u users.Repository, c categories.Repository) *QueryService {
	return &QueryService{artworks: a, submissions: s, users: u, categories: c}
}

// Pagination describes one page of a paginated listing.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	PerPage     int `json:"per_page"`
}

// ListApproved returns one page of the approved artworks in collection
// order. page and perPage are assumed positive; the HTTP boundary clamps.
func (q *QueryService) ListApproved(ctx context.Context, page, perPage int) ([]models.Artwork, Pagination, error) {
	approved, err := q.artworks.List(ctx, models.ArtworkStatusApproved)
	if err != nil {
		return nil, Pagination{}, err
	}

	total := len(approved)
	offset := (page - 1) * perPage
	if offset > total {
		offset = total
	}
	end := offset + perPage
	if end > total {
		end = total
	}

	return approved[offset:end], Pagination{
		CurrentPage: page,
		TotalPages:  (total + perPage - 1) / perPage,
		TotalItems:  total,
		PerPage:     perPage,
	}, nil
}

// GetWithSimilar returns an artwork plus up to three approved artworks of
// the same type, in collection order, excluding the artwork itself.
func (q *QueryService) GetWithSimilar(ctx context.Context, id int64) (*models.Artwork, []models.Artwork, error) {
	artwork, err := q.artworks.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	approved, err := q.artworks.List(ctx, models.ArtworkStatusApproved)
	if err != nil {
		return nil, nil, err
	}

	similar := make([]models.Artwork, 0, 3)
	for _, a := range approved {
		if a.ID != artwork.ID && a.Type == artwork.Type {
			similar = append(similar, a)
			if len(similar) == 3 {
				break
			}
		}
	}
	return artwork, similar, nil
}

// Search filters the approved artworks: case-insensitive substring match of
// query against title, description and artist; exact type equality;
// substring match on period. An empty query with no filters returns the
// full approved set.
func (q *QueryService) Search(ctx context.Context, query, artType, period string) ([]models.Artwork, error) {
	approved, err := q.artworks.List(ctx, models.ArtworkStatusApproved)
	if err != nil {
		return nil, err
	}

	results := make([]models.Artwork, 0, len(approved))
	for _, a := range approved {
		if query != "" && !containsFold(a.Title, query) &&
			!containsFold(a.Description, query) && !containsFold(a.Artist, query) {
			continue
		}
		if artType != "" && a.Type != artType {
			continue
		}
		if period != "" && !containsFold(a.Period, period) {
			continue
		}
		results = append(results, a)
	}
	return results, nil
}

// ListSubmissions applies the visibility rule: an admin caller sees every
// submission, anyone else sees only their own. An optional status narrows
// the result further.
func (q *QueryService) ListSubmissions(ctx context.Context, caller sessions.Session, status models.SubmissionStatus) ([]models.Submission, error) {
	f := submissions.Filter{Status: status}
	if caller.Role != models.RoleAdmin {
		f.SubmittedBy = caller.UserID
	}
	return q.submissions.List(ctx, f)
}

// ListCategories returns every category in insertion order.
func (q *QueryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return q.categories.List(ctx)
}

// Stats are the admin dashboard counts, computed fresh on every call.
type Stats struct {
	PendingSubmissions int `json:"pending_submissions"`
	TotalUsers         int `json:"total_users"`
	TotalArtworks      int `json:"total_artworks"`
}

func (q *QueryService) Stats(ctx context.Context) (*Stats, error) {
	pending, err := q.submissions.List(ctx, submissions.Filter{Status: models.SubmissionStatusPending})
	if err != nil {
		return nil, err
	}
	allUsers, err := q.users.List(ctx)
	if err != nil {
		return nil, err
	}
	approved, err := q.artworks.List(ctx, models.ArtworkStatusApproved)
	if err != nil {
		return nil, err
	}
	return &Stats{
		PendingSubmissions: len(pending),
		TotalUsers:         len(allUsers),
		TotalArtworks:      len(approved),
	}, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
