// Package notification manages the per-user notification feed.
package notification

import (
	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
)

type Service interface {
	List(userID uint) ([]models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error

	// Notify creates a notification for a user. Implements the complaint
	// service's Notifier.
	Notify(userID uint, title, message, kind string) error
}

type service struct {
	repo repositories.NotificationRepository
}

func NewService(repo repositories.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(userID uint) ([]models.Notification, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) MarkRead(id, userID uint) error {
	return s.repo.MarkRead(id, userID)
}

func (s *service) MarkAllRead(userID uint) error {
	return s.repo.MarkAllRead(userID)
}

func (s *service) Notify(userID uint, title, message, kind string) error {
	return s.repo.Create(&models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	})
}
