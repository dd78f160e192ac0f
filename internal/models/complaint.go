package models

import (
	"time"

	"github.com/lib/pq"
)

// Complaint statuses. Transitions move only forward:
// Pending -> In Progress -> Resolved.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// StatusRank orders the complaint statuses for the monotonic-transition check.
// Unknown statuses rank below Pending.
func StatusRank(status string) int {
	switch status {
	case StatusPending:
		return 1
	case StatusInProgress:
		return 2
	case StatusResolved:
		return 3
	}
	return 0
}

// Complaint priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the supported priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Complaint struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null;index" json:"category"`
	Status      string `gorm:"default:'Pending';index" json:"status"`
	Priority    string `gorm:"default:'medium'" json:"priority"`
	SubmitterID uint   `gorm:"index" json:"submitter_id"`
	SubmittedBy string `json:"submitted_by"`
	Location    string `gorm:"not null" json:"location"`
	Votes       int    `gorm:"default:0" json:"votes"`
	Response    string `json:"response,omitempty"`
	Attachments pq.StringArray `gorm:"type:text[]" json:"attachments,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ComplaintVote records that a user has voted for a complaint.
// The vote count on the complaint and these rows move together.
type ComplaintVote struct {
	ComplaintID string    `gorm:"primaryKey" json:"complaint_id"`
	UserID      uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ComplaintView is a complaint as seen by one viewer.
type ComplaintView struct {
	Complaint
	HasVoted bool `json:"has_voted"`
}

// NewComplaintInput carries the new-complaint form fields. ServiceType and
// Location hold values from the closed option sets, not display labels.
type NewComplaintInput struct {
	ServiceType string   `json:"service_type"`
	Location    string   `json:"location"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Attachments []string `json:"attachments,omitempty"`
}
