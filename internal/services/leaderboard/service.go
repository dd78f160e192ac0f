// Package leaderboard ranks citizens by complaint-contribution activity.
package leaderboard

import (
	"time"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"

	"gorm.io/gorm"
)

const defaultTopLimit = 5

type Service interface {
	// TopContributors ranks submitters, flagging the viewer's own row.
	TopContributors(viewerID uint, limit int) ([]models.Contributor, error)

	// Rank returns the viewer's position on the full leaderboard, or 0 when
	// the viewer has not submitted any complaints.
	Rank(viewerID uint) (int, error)

	// MonthlyHeroes lists the highlighted citizens for the current month.
	MonthlyHeroes() ([]models.MonthlyHero, error)

	// Summary aggregates portal-wide activity.
	Summary() (*models.LeaderboardSummary, error)
}

type service struct {
	complaints repositories.ComplaintRepository
	users      repositories.UserRepository
	db         *gorm.DB
}

func NewService(complaints repositories.ComplaintRepository, users repositories.UserRepository, db *gorm.DB) Service {
	return &service{complaints: complaints, users: users, db: db}
}

func (s *service) TopContributors(viewerID uint, limit int) ([]models.Contributor, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	contributors, err := s.complaints.TopContributors(limit)
	if err != nil {
		return nil, err
	}
	for i := range contributors {
		contributors[i].IsCurrentUser = contributors[i].UserID == viewerID
	}
	return contributors, nil
}

func (s *service) Rank(viewerID uint) (int, error) {
	contributors, err := s.complaints.TopContributors(0)
	if err != nil {
		return 0, err
	}
	for _, c := range contributors {
		if c.UserID == viewerID {
			return c.Rank, nil
		}
	}
	return 0, nil
}

func (s *service) MonthlyHeroes() ([]models.MonthlyHero, error) {
	var heroes []models.MonthlyHero
	err := s.db.Where("month = ?", currentMonth()).
		Order("rank ASC").
		Find(&heroes).Error
	return heroes, err
}

func (s *service) Summary() (*models.LeaderboardSummary, error) {
	total, resolved, err := s.complaints.Counts()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.users.CountActive()
	if err != nil {
		return nil, err
	}
	return &models.LeaderboardSummary{
		CurrentMonth:      currentMonth(),
		TotalActiveUsers:  activeUsers,
		TotalComplaints:   total,
		ResolvedThisMonth: resolved,
	}, nil
}

func currentMonth() string {
	return time.Now().Format("January 2006")
}
