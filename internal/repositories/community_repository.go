package repositories

import (
	"errors"

	"fixmycity/internal/models"
)

var ErrGroupNotFound = errors.New("community group not found")

// CommunityRepository manages community groups, memberships, and posts.
type CommunityRepository interface {
	// ListGroups returns all groups, most recently active first.
	ListGroups() ([]models.CommunityGroup, error)

	// GetGroup retrieves a group by identifier.
	GetGroup(id string) (*models.CommunityGroup, error)

	// MemberGroupIDs lists the groups a user belongs to.
	MemberGroupIDs(userID uint) ([]string, error)

	// ToggleMembership joins or leaves a group, moving the member count by
	// one in the same transaction. Returns the new joined state and count,
	// or ErrGroupNotFound.
	ToggleMembership(groupID string, userID uint) (joined bool, members int, err error)

	// ListPosts returns group posts, newest first. An empty groupID lists
	// posts across all groups.
	ListPosts(groupID string) ([]models.CommunityPost, error)
}
