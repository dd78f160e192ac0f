// Package community implements group listing, membership toggling, and the
// group post feed.
package community

import (
	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
)

type Service interface {
	// ListGroups returns all groups with the viewer's joined flag attached.
	ListGroups(viewerID uint) ([]models.GroupView, error)

	// ToggleMembership joins or leaves a group. The joined flag and the
	// member count always move together, by exactly one.
	ToggleMembership(viewerID uint, groupID string) (*models.GroupView, error)

	// ListPosts returns posts, newest first; empty groupID means all groups.
	ListPosts(groupID string) ([]models.CommunityPost, error)
}

type service struct {
	repo repositories.CommunityRepository
}

func NewService(repo repositories.CommunityRepository) Service {
	return &service{repo: repo}
}

func (s *service) ListGroups(viewerID uint) ([]models.GroupView, error) {
	groups, err := s.repo.ListGroups()
	if err != nil {
		return nil, err
	}

	joinedIDs, err := s.repo.MemberGroupIDs(viewerID)
	if err != nil {
		return nil, err
	}
	joined := make(map[string]bool, len(joinedIDs))
	for _, id := range joinedIDs {
		joined[id] = true
	}

	views := make([]models.GroupView, len(groups))
	for i, g := range groups {
		views[i] = models.GroupView{CommunityGroup: g, IsJoined: joined[g.ID]}
	}
	return views, nil
}

func (s *service) ToggleMembership(viewerID uint, groupID string) (*models.GroupView, error) {
	joined, members, err := s.repo.ToggleMembership(groupID, viewerID)
	if err != nil {
		return nil, err
	}

	g, err := s.repo.GetGroup(groupID)
	if err != nil {
		return nil, err
	}
	g.Members = members
	return &models.GroupView{CommunityGroup: *g, IsJoined: joined}, nil
}

func (s *service) ListPosts(groupID string) ([]models.CommunityPost, error) {
	return s.repo.ListPosts(groupID)
}
