package repositories

import (
	"errors"

	"fixmycity/internal/models"

	"gorm.io/gorm"
)

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a GORM-backed community repository.
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) ListGroups() ([]models.CommunityGroup, error) {
	var groups []models.CommunityGroup
	err := r.db.Order("last_activity DESC").Find(&groups).Error
	return groups, err
}

func (r *communityRepository) GetGroup(id string) (*models.CommunityGroup, error) {
	var g models.CommunityGroup
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *communityRepository) MemberGroupIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.GroupMembership{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &ids).Error
	return ids, err
}

func (r *communityRepository) ToggleMembership(groupID string, userID uint) (bool, int, error) {
	var joined bool
	var members int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var g models.CommunityGroup
		if err := tx.First(&g, "id = ?", groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.GroupMembership{}).
			Where("group_id = ? AND user_id = ?", groupID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.Where("group_id = ? AND user_id = ?", groupID, userID).
				Delete(&models.GroupMembership{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&g).
				UpdateColumn("members", gorm.Expr("GREATEST(members - 1, 0)")).Error; err != nil {
				return err
			}
			joined = false
		} else {
			m := models.GroupMembership{GroupID: groupID, UserID: userID}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			if err := tx.Model(&g).
				UpdateColumn("members", gorm.Expr("members + 1")).Error; err != nil {
				return err
			}
			joined = true
		}

		if err := tx.First(&g, "id = ?", groupID).Error; err != nil {
			return err
		}
		members = g.Members
		return nil
	})

	return joined, members, err
}

func (r *communityRepository) ListPosts(groupID string) ([]models.CommunityPost, error) {
	q := r.db.Model(&models.CommunityPost{})
	if groupID != "" {
		q = q.Where("group_id = ?", groupID)
	}
	var posts []models.CommunityPost
	err := q.Order("created_at DESC").Find(&posts).Error
	return posts, err
}
