// Package dashboard aggregates a citizen's view of the portal: headline
// stats and the recent activity feed.
package dashboard

import (
	"sort"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
)

const maxActivities = 10

// Ranker supplies the viewer's leaderboard position.
type Ranker interface {
	Rank(viewerID uint) (int, error)
}

type Service interface {
	Stats(viewerID uint) (*models.DashboardStats, error)
	RecentActivity(viewerID uint) ([]models.Activity, error)
}

type service struct {
	complaints repositories.ComplaintRepository
	community  repositories.CommunityRepository
	ranker     Ranker
}

func NewService(complaints repositories.ComplaintRepository, community repositories.CommunityRepository, ranker Ranker) Service {
	return &service{complaints: complaints, community: community, ranker: ranker}
}

func (s *service) Stats(viewerID uint) (*models.DashboardStats, error) {
	active, _, err := s.complaints.CountByUser(viewerID)
	if err != nil {
		return nil, err
	}

	groupIDs, err := s.community.MemberGroupIDs(viewerID)
	if err != nil {
		return nil, err
	}

	rank, err := s.ranker.Rank(viewerID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range models.ServiceCategories {
		total += c.Services
	}

	return &models.DashboardStats{
		ServicesAvailable: total,
		ActiveComplaints:  active,
		CommunityGroups:   int64(len(groupIDs)),
		LeaderboardRank:   rank,
	}, nil
}

func (s *service) RecentActivity(viewerID uint) ([]models.Activity, error) {
	complaints, err := s.complaints.List(repositories.ComplaintFilter{SubmitterID: viewerID})
	if err != nil {
		return nil, err
	}

	var activities []models.Activity
	for _, c := range complaints {
		activities = append(activities, models.Activity{
			Name:   c.Title,
			Status: c.Status,
			Date:   c.CreatedAt,
			Type:   "complaint",
		})
	}

	groupIDs, err := s.community.MemberGroupIDs(viewerID)
	if err != nil {
		return nil, err
	}
	for _, id := range groupIDs {
		g, err := s.community.GetGroup(id)
		if err != nil {
			continue
		}
		activities = append(activities, models.Activity{
			Name:   "Joined " + g.Name,
			Status: "Completed",
			Date:   g.LastActivity,
			Type:   "community",
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})
	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	return activities, nil
}
