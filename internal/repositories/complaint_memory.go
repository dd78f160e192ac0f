package repositories

import (
	"sort"
	"sync"

	"fixmycity/internal/models"
)

// memoryComplaintRepository is an in-memory complaint registry with the same
// semantics as the GORM-backed one: insertion at the front, consistent vote
// toggling, benign misses. It backs tests and single-process demo runs.
type memoryComplaintRepository struct {
	mu         sync.RWMutex
	complaints []models.Complaint
	votes      map[string]map[uint]bool
}

// NewMemoryComplaintRepository creates an empty in-memory registry.
func NewMemoryComplaintRepository() ComplaintRepository {
	return &memoryComplaintRepository{
		votes: make(map[string]map[uint]bool),
	}
}

func (r *memoryComplaintRepository) Create(c *models.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.complaints = append([]models.Complaint{*c}, r.complaints...)
	return nil
}

func (r *memoryComplaintRepository) GetByID(id string) (*models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.complaints {
		if r.complaints[i].ID == id {
			c := r.complaints[i]
			return &c, nil
		}
	}
	return nil, ErrComplaintNotFound
}

func (r *memoryComplaintRepository) List(filter ComplaintFilter) ([]models.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Complaint
	for _, c := range r.complaints {
		if filter.SubmitterID != 0 && c.SubmitterID != filter.SubmitterID {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryComplaintRepository) HasVoted(complaintID string, userID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.votes[complaintID][userID], nil
}

func (r *memoryComplaintRepository) ToggleVote(complaintID string, userID uint) (bool, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.complaints {
		if r.complaints[i].ID != complaintID {
			continue
		}

		if r.votes[complaintID] == nil {
			r.votes[complaintID] = make(map[uint]bool)
		}

		if r.votes[complaintID][userID] {
			delete(r.votes[complaintID], userID)
			if r.complaints[i].Votes > 0 {
				r.complaints[i].Votes--
			}
			return false, r.complaints[i].Votes, nil
		}

		r.votes[complaintID][userID] = true
		r.complaints[i].Votes++
		return true, r.complaints[i].Votes, nil
	}
	return false, 0, ErrComplaintNotFound
}

func (r *memoryComplaintRepository) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.complaints {
		if r.complaints[i].ID == id {
			r.complaints[i].Status = status
			return nil
		}
	}
	return ErrComplaintNotFound
}

func (r *memoryComplaintRepository) SetResponse(id, response string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.complaints {
		if r.complaints[i].ID == id {
			r.complaints[i].Response = response
			return nil
		}
	}
	return ErrComplaintNotFound
}

func (r *memoryComplaintRepository) CountByUser(userID uint) (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active, resolved int64
	for _, c := range r.complaints {
		if c.SubmitterID != userID {
			continue
		}
		if c.Status == models.StatusResolved {
			resolved++
		} else {
			active++
		}
	}
	return active, resolved, nil
}

func (r *memoryComplaintRepository) Counts() (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var resolved int64
	for _, c := range r.complaints {
		if c.Status == models.StatusResolved {
			resolved++
		}
	}
	return int64(len(r.complaints)), resolved, nil
}

func (r *memoryComplaintRepository) TopContributors(limit int) ([]models.Contributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type tally struct {
		userID    uint
		name      string
		submitted int
		resolved  int
	}
	byUser := make(map[uint]*tally)
	for _, c := range r.complaints {
		t, ok := byUser[c.SubmitterID]
		if !ok {
			t = &tally{userID: c.SubmitterID, name: c.SubmittedBy}
			byUser[c.SubmitterID] = t
		}
		t.submitted++
		if c.Status == models.StatusResolved {
			t.resolved++
		}
	}

	tallies := make([]*tally, 0, len(byUser))
	for _, t := range byUser {
		tallies = append(tallies, t)
	}
	sort.Slice(tallies, func(i, j int) bool {
		return tallies[i].submitted > tallies[j].submitted
	})

	if limit > 0 && len(tallies) > limit {
		tallies = tallies[:limit]
	}

	contributors := make([]models.Contributor, len(tallies))
	for i, t := range tallies {
		contributors[i] = models.Contributor{
			Rank:                i + 1,
			UserID:              t.userID,
			Name:                t.name,
			ComplaintsSubmitted: t.submitted,
			ResolvedComplaints:  t.resolved,
		}
	}
	return contributors, nil
}
