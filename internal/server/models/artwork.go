package models

import "time"

// ArtworkStatus exists for symmetry with submissions; the artworks collection
// only ever holds approved items.
type ArtworkStatus string

const ArtworkStatusApproved ArtworkStatus = "approved"

// Artwork is a published, publicly visible catalog entry. SubmittedBy is a
// weak reference to the contributing user; it is advisory, not enforced.
type Artwork struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Type          string        `json:"type"`
	Artist        string        `json:"artist"`
	Period        string        `json:"period"`
	Description   string        `json:"description"`
	Location      string        `json:"location"`
	ImageURL      string        `json:"image_url"`
	ConditionNote string        `json:"condition_note"`
	Status        ArtworkStatus `json:"status"`
	SubmittedBy   int64         `json:"submitted_by"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (a Artwork) RecordID() int64 { return a.ID }
