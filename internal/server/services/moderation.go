package services

import (
	"context"
	"strings"

	"artcatalog/internal/common"
	"artcatalog/internal/server/models"
	"artcatalog/internal/server/repositories/artworks"
	"artcatalog/internal/server/repositories/submissions"
)

// ModerationService owns the submission lifecycle: intake of new submissions
// and the pending -> {approved, rejected} state machine. Approval is the
// only path that turns user-submitted content into a public artwork.
type ModerationService struct {
	submissions submissions.Repository
	artworks    artworks.Repository
}

func NewModerationService(s submissions.Repository, a artworks.Repository) *ModerationService {
	return &ModerationService{submissions: s, artworks: a}
}

// ArtworkInput carries the content fields of a proposed or imported artwork.
type ArtworkInput struct {
	Title         string
	Type          string
	Artist        string
	Period        string
	Description   string
	Location      string
	ImageURL      string
	ConditionNote string
}

func (in ArtworkInput) validate() error {
	ve := &common.ValidationError{}
	if strings.TrimSpace(in.Title) == "" {
		ve.Add("title is required")
	}
	if strings.TrimSpace(in.Type) == "" {
		ve.Add("art type is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		ve.Add("description is required")
	}
	if !ve.Empty() {
		return ve
	}
	return nil
}

// Submit validates the input and stores a new pending submission owned by
// the given user. An absent artist defaults to "Unknown".
func (s *ModerationService) Submit(ctx context.Context, userID int64, in ArtworkInput) (*models.Submission, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	artist := in.Artist
	if strings.TrimSpace(artist) == "" {
		artist = "Unknown"
	}

	return s.submissions.Create(ctx, submissions.CreateParams{
		Title:         in.Title,
		Type:          in.Type,
		Artist:        artist,
		Period:        in.Period,
		Description:   in.Description,
		Location:      in.Location,
		ImageURL:      in.ImageURL,
		ConditionNote: in.ConditionNote,
		SubmittedBy:   userID,
	})
}

// SetStatus applies a moderation decision. Only pending -> approved and
// pending -> rejected are legal; anything else fails with
// ErrInvalidTransition and leaves all state unchanged. Approval copies the
// submission's content into a new artwork with a fresh id; the submission
// row is kept for audit with its status updated in place.
func (s *ModerationService) SetStatus(ctx context.Context, id int64, status models.SubmissionStatus) (*models.Submission, error) {
	if status != models.SubmissionStatusApproved && status != models.SubmissionStatusRejected {
		return nil, common.ErrInvalidTransition
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != models.SubmissionStatusPending {
		return nil, common.ErrInvalidTransition
	}

	if status == models.SubmissionStatusApproved {
		if _, err := s.artworks.Create(ctx, artworks.CreateParams{
			Title:         sub.Title,
			Type:          sub.Type,
			Artist:        sub.Artist,
			Period:        sub.Period,
			Description:   sub.Description,
			Location:      sub.Location,
			ImageURL:      sub.ImageURL,
			ConditionNote: sub.ConditionNote,
			SubmittedBy:   sub.SubmittedBy,
		}); err != nil {
			return nil, err
		}
	}

	return s.submissions.UpdateStatus(ctx, id, status)
}
