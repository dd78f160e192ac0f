package repositories

import (
	"errors"

	"fixmycity/internal/models"

	"gorm.io/gorm"
)

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a GORM-backed complaint registry.
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(c *models.Complaint) error {
	return r.db.Create(c).Error
}

func (r *complaintRepository) GetByID(id string) (*models.Complaint, error) {
	var c models.Complaint
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *complaintRepository) List(filter ComplaintFilter) ([]models.Complaint, error) {
	q := r.db.Model(&models.Complaint{})
	if filter.SubmitterID != 0 {
		q = q.Where("submitter_id = ?", filter.SubmitterID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var complaints []models.Complaint
	err := q.Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *complaintRepository) HasVoted(complaintID string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ComplaintVote{}).
		Where("complaint_id = ? AND user_id = ?", complaintID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *complaintRepository) ToggleVote(complaintID string, userID uint) (bool, int, error) {
	var voted bool
	var votes int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var c models.Complaint
		if err := tx.First(&c, "id = ?", complaintID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrComplaintNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.ComplaintVote{}).
			Where("complaint_id = ? AND user_id = ?", complaintID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.Where("complaint_id = ? AND user_id = ?", complaintID, userID).
				Delete(&models.ComplaintVote{}).Error; err != nil {
				return err
			}
			// The count floor guards against drift between the vote rows
			// and the counter.
			if err := tx.Model(&c).
				UpdateColumn("votes", gorm.Expr("GREATEST(votes - 1, 0)")).Error; err != nil {
				return err
			}
			voted = false
		} else {
			vote := models.ComplaintVote{ComplaintID: complaintID, UserID: userID}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			if err := tx.Model(&c).
				UpdateColumn("votes", gorm.Expr("votes + 1")).Error; err != nil {
				return err
			}
			voted = true
		}

		if err := tx.First(&c, "id = ?", complaintID).Error; err != nil {
			return err
		}
		votes = c.Votes
		return nil
	})

	return voted, votes, err
}

func (r *complaintRepository) UpdateStatus(id, status string) error {
	result := r.db.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}

func (r *complaintRepository) SetResponse(id, response string) error {
	result := r.db.Model(&models.Complaint{}).Where("id = ?", id).Update("response", response)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}

func (r *complaintRepository) CountByUser(userID uint) (int64, int64, error) {
	var active, resolved int64
	if err := r.db.Model(&models.Complaint{}).
		Where("submitter_id = ? AND status <> ?", userID, models.StatusResolved).
		Count(&active).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.Model(&models.Complaint{}).
		Where("submitter_id = ? AND status = ?", userID, models.StatusResolved).
		Count(&resolved).Error
	return active, resolved, err
}

func (r *complaintRepository) Counts() (int64, int64, error) {
	var total, resolved int64
	if err := r.db.Model(&models.Complaint{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.Model(&models.Complaint{}).
		Where("status = ?", models.StatusResolved).
		Count(&resolved).Error
	return total, resolved, err
}

func (r *complaintRepository) TopContributors(limit int) ([]models.Contributor, error) {
	rows := []struct {
		SubmitterID uint
		SubmittedBy string
		Submitted   int
		Resolved    int
	}{}

	q := r.db.Model(&models.Complaint{}).
		Select("submitter_id, submitted_by, COUNT(*) AS submitted, "+
			"COUNT(*) FILTER (WHERE status = ?) AS resolved", models.StatusResolved).
		Group("submitter_id, submitted_by").
		Order("submitted DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	contributors := make([]models.Contributor, len(rows))
	for i, row := range rows {
		contributors[i] = models.Contributor{
			Rank:                i + 1,
			UserID:              row.SubmitterID,
			Name:                row.SubmittedBy,
			ComplaintsSubmitted: row.Submitted,
			ResolvedComplaints:  row.Resolved,
		}
	}
	return contributors, nil
}
