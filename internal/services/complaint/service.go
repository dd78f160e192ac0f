// Package complaint implements the complaint registry workflows: listing,
// submission, vote toggling, and the administrative status lifecycle.
package complaint

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/validation"
)

// lastComplaintID tracks the numeric part of the most recently issued
// complaint identifier. Identifiers are CMP<unix-ms> and serve as the primary
// key, so when two submissions land in the same millisecond the counter
// advances past the clock to keep them distinct.
var lastComplaintID atomic.Int64

func nextComplaintID() string {
	for {
		prev := lastComplaintID.Load()
		next := time.Now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if lastComplaintID.CompareAndSwap(prev, next) {
			return fmt.Sprintf("CMP%d", next)
		}
	}
}

// ErrInvalidTransition marks a status change that would move a complaint
// backwards. The lifecycle is Pending -> In Progress -> Resolved only.
var ErrInvalidTransition = errors.New("complaint status cannot move backwards")

// ErrUnknownStatus marks a status outside the closed set.
var ErrUnknownStatus = errors.New("unknown complaint status")

// Notifier delivers a notification to a user. The complaint service uses it
// to tell submitters about lifecycle changes.
type Notifier interface {
	Notify(userID uint, title, message, kind string) error
}

// ListFilter narrows a listing from the handler's perspective.
type ListFilter struct {
	Mine     bool
	Category string
	Status   string
}

type Service interface {
	List(filter ListFilter, viewerID uint) ([]models.ComplaintView, error)
	Get(id string, viewerID uint) (*models.ComplaintView, error)
	Create(input *models.NewComplaintInput, submitter *models.UserClaims, submitterName string) (*models.Complaint, error)
	ToggleVote(viewerID uint, complaintID string) (*models.ComplaintView, error)
	UpdateStatus(id, status string) error
	Respond(id, response string) error
}

type service struct {
	repo     repositories.ComplaintRepository
	notifier Notifier
}

func NewService(repo repositories.ComplaintRepository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) List(filter ListFilter, viewerID uint) ([]models.ComplaintView, error) {
	repoFilter := repositories.ComplaintFilter{
		Category: filter.Category,
		Status:   filter.Status,
	}
	if filter.Mine {
		repoFilter.SubmitterID = viewerID
	}

	complaints, err := s.repo.List(repoFilter)
	if err != nil {
		return nil, err
	}

	views := make([]models.ComplaintView, len(complaints))
	for i, c := range complaints {
		voted, err := s.repo.HasVoted(c.ID, viewerID)
		if err != nil {
			return nil, err
		}
		views[i] = models.ComplaintView{Complaint: c, HasVoted: voted}
	}
	return views, nil
}

func (s *service) Get(id string, viewerID uint) (*models.ComplaintView, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	voted, err := s.repo.HasVoted(c.ID, viewerID)
	if err != nil {
		return nil, err
	}
	return &models.ComplaintView{Complaint: *c, HasVoted: voted}, nil
}

func (s *service) Create(input *models.NewComplaintInput, submitter *models.UserClaims, submitterName string) (*models.Complaint, error) {
	if err := validation.ValidateNewComplaint(input); err != nil {
		return nil, err
	}

	category, _ := models.ServiceTypeLabel(input.ServiceType)
	location, _ := models.LocationLabel(input.Location)

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	c := &models.Complaint{
		ID:          nextComplaintID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Status:      models.StatusPending,
		Priority:    priority,
		SubmitterID: submitter.UserID,
		SubmittedBy: submitterName,
		Location:    location,
		Votes:       0,
		Attachments: input.Attachments,
	}

	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ToggleVote flips the viewer's vote on a complaint. A miss is benign: the
// identifier always originates from the registry's own listing, so a vanished
// complaint yields (nil, nil) rather than an error.
func (s *service) ToggleVote(viewerID uint, complaintID string) (*models.ComplaintView, error) {
	voted, votes, err := s.repo.ToggleVote(complaintID, viewerID)
	if errors.Is(err, repositories.ErrComplaintNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(complaintID)
	if err != nil {
		if errors.Is(err, repositories.ErrComplaintNotFound) {
			return nil, nil
		}
		return nil, err
	}
	c.Votes = votes
	return &models.ComplaintView{Complaint: *c, HasVoted: voted}, nil
}

func (s *service) UpdateStatus(id, status string) error {
	if models.StatusRank(status) == 0 {
		return ErrUnknownStatus
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if models.StatusRank(status) < models.StatusRank(c.Status) {
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("Your complaint (%s) is now %s.", c.ID, status)
		if err := s.notifier.Notify(c.SubmitterID, "Complaint Status Update", msg, models.NotificationUpdate); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Respond(id, response string) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.SetResponse(id, response); err != nil {
		return err
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("An official response was added to your complaint (%s).", c.ID)
		if err := s.notifier.Notify(c.SubmitterID, "Official Response", msg, models.NotificationUpdate); err != nil {
			return err
		}
	}
	return nil
}
