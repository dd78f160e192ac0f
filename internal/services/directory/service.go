// Package directory serves the service directory and the local information
// section: categories, emergency numbers, government schemes, announcements.
package directory

import (
	"strings"

	"fixmycity/internal/models"

	"gorm.io/gorm"
)

type Service interface {
	Categories() []models.ServiceCategory
	Search(query string) []models.ServiceCategory
	TotalServices() int
	Emergency() []models.EmergencyService
	Schemes() ([]models.GovernmentScheme, error)
	Announcements() ([]models.Announcement, error)
}

type service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

func (s *service) Categories() []models.ServiceCategory {
	return models.ServiceCategories
}

func (s *service) Search(query string) []models.ServiceCategory {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return models.ServiceCategories
	}
	var out []models.ServiceCategory
	for _, c := range models.ServiceCategories {
		if strings.Contains(strings.ToLower(c.Label), query) {
			out = append(out, c)
		}
	}
	return out
}

func (s *service) TotalServices() int {
	total := 0
	for _, c := range models.ServiceCategories {
		total += c.Services
	}
	return total
}

func (s *service) Emergency() []models.EmergencyService {
	return models.EmergencyServices
}

func (s *service) Schemes() ([]models.GovernmentScheme, error) {
	var schemes []models.GovernmentScheme
	err := s.db.Find(&schemes).Error
	return schemes, err
}

func (s *service) Announcements() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := s.db.Order("date DESC").Find(&announcements).Error
	return announcements, err
}
