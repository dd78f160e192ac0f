package community

import (
	"testing"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommunityRepo struct {
	groups  []models.CommunityGroup
	members map[string]map[uint]bool
	posts   []models.CommunityPost
}

func newFakeRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{
		groups: []models.CommunityGroup{
			{ID: "CG001", Name: "Water Conservation Group", Members: 234},
			{ID: "CG002", Name: "Local Safety Watch", Members: 156},
		},
		members: map[string]map[uint]bool{
			"CG001": {1: true},
		},
		posts: []models.CommunityPost{
			{ID: "POST001", GroupID: "CG001", Title: "Water Tank Maintenance Schedule"},
			{ID: "POST002", GroupID: "CG002", Title: "Increased Patrol Schedule"},
		},
	}
}

func (r *fakeCommunityRepo) ListGroups() ([]models.CommunityGroup, error) {
	return r.groups, nil
}

func (r *fakeCommunityRepo) GetGroup(id string) (*models.CommunityGroup, error) {
	for i := range r.groups {
		if r.groups[i].ID == id {
			g := r.groups[i]
			return &g, nil
		}
	}
	return nil, repositories.ErrGroupNotFound
}

func (r *fakeCommunityRepo) MemberGroupIDs(userID uint) ([]string, error) {
	var out []string
	for groupID, users := range r.members {
		if users[userID] {
			out = append(out, groupID)
		}
	}
	return out, nil
}

func (r *fakeCommunityRepo) ToggleMembership(groupID string, userID uint) (bool, int, error) {
	for i := range r.groups {
		if r.groups[i].ID != groupID {
			continue
		}
		if r.members[groupID] == nil {
			r.members[groupID] = make(map[uint]bool)
		}
		if r.members[groupID][userID] {
			delete(r.members[groupID], userID)
			r.groups[i].Members--
			return false, r.groups[i].Members, nil
		}
		r.members[groupID][userID] = true
		r.groups[i].Members++
		return true, r.groups[i].Members, nil
	}
	return false, 0, repositories.ErrGroupNotFound
}

func (r *fakeCommunityRepo) ListPosts(groupID string) ([]models.CommunityPost, error) {
	if groupID == "" {
		return r.posts, nil
	}
	var out []models.CommunityPost
	for _, p := range r.posts {
		if p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestListGroups(t *testing.T) {
	svc := NewService(newFakeRepo())

	views, err := svc.ListGroups(1)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].IsJoined, "viewer belongs to CG001")
	assert.False(t, views[1].IsJoined)

	// A different viewer sees no joined flags.
	views, err = svc.ListGroups(99)
	require.NoError(t, err)
	assert.False(t, views[0].IsJoined)
	assert.False(t, views[1].IsJoined)
}

func TestToggleMembership(t *testing.T) {
	svc := NewService(newFakeRepo())

	t.Run("join moves the count up by one", func(t *testing.T) {
		view, err := svc.ToggleMembership(2, "CG002")
		require.NoError(t, err)
		assert.True(t, view.IsJoined)
		assert.Equal(t, 157, view.Members)
	})

	t.Run("leave restores the count", func(t *testing.T) {
		view, err := svc.ToggleMembership(2, "CG002")
		require.NoError(t, err)
		assert.False(t, view.IsJoined)
		assert.Equal(t, 156, view.Members)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := svc.ToggleMembership(2, "CG999")
		assert.ErrorIs(t, err, repositories.ErrGroupNotFound)
	})
}

func TestListPosts(t *testing.T) {
	svc := NewService(newFakeRepo())

	posts, err := svc.ListPosts("CG001")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "POST001", posts[0].ID)

	all, err := svc.ListPosts("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
