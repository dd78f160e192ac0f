package repositories

import (
	"errors"

	"fixmycity/internal/models"
)

// ErrComplaintNotFound marks a lookup for an identifier no longer in the
// registry. Callers driven by the registry's own listings treat it as a
// benign miss.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintFilter narrows a complaint listing. Zero values mean "no filter".
type ComplaintFilter struct {
	SubmitterID uint
	Category    string
	Status      string
}

// ComplaintRepository is the complaint registry: an ordered collection of
// complaint records listed most-recent-first.
type ComplaintRepository interface {
	// Create inserts a new complaint; it appears at the front of listings.
	Create(c *models.Complaint) error

	// GetByID retrieves a complaint by identifier.
	GetByID(id string) (*models.Complaint, error)

	// List returns complaints matching the filter, most recent first.
	List(filter ComplaintFilter) ([]models.Complaint, error)

	// HasVoted reports whether a user has voted for a complaint.
	HasVoted(complaintID string, userID uint) (bool, error)

	// ToggleVote flips a user's vote and moves the count by one in the same
	// transaction, so the flag and the count never diverge. It returns the
	// new vote state and count, or ErrComplaintNotFound.
	ToggleVote(complaintID string, userID uint) (voted bool, votes int, err error)

	// UpdateStatus sets a complaint's status.
	UpdateStatus(id, status string) error

	// SetResponse attaches an official response to a complaint.
	SetResponse(id, response string) error

	// CountByUser returns a user's active (non-resolved) and resolved counts.
	CountByUser(userID uint) (active, resolved int64, err error)

	// Counts returns the total number of complaints and how many are resolved.
	Counts() (total, resolved int64, err error)

	// TopContributors ranks submitters by complaints submitted.
	TopContributors(limit int) ([]models.Contributor, error)
}
