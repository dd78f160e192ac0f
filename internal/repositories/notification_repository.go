package repositories

import (
	"fixmycity/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository manages per-user notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a GORM-backed notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(id, userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("unread", false).Error
}

func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND unread = ?", userID, true).
		Update("unread", false).Error
}
