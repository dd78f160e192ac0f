package models

import "time"

// Notification types.
const (
	NotificationUpdate       = "update"
	NotificationAnnouncement = "announcement"
	NotificationSuccess      = "success"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `json:"message"`
	Type      string    `gorm:"default:'update'" json:"type"`
	Unread    bool      `gorm:"default:true" json:"unread"`
	CreatedAt time.Time `json:"created_at"`
}
