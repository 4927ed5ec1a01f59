package models

import "time"

// SubmissionStatus is the moderation state of a submission. Pending is the
// only non-terminal state; approved and rejected are final.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// Submission is a user-proposed artwork entry awaiting moderation. Approved
// submissions are retained for audit; their content is copied into a new
// Artwork rather than moved.
type Submission struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Type          string           `json:"type"`
	Artist        string           `json:"artist"`
	Period        string           `json:"period"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	ImageURL      string           `json:"image_url"`
	ConditionNote string           `json:"condition_note"`
	Status        SubmissionStatus `json:"status"`
	SubmittedBy   int64            `json:"submitted_by"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (s Submission) RecordID() int64 { return s.ID }
