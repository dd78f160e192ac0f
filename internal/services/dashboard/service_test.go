package dashboard

import (
	"testing"
	"time"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommunityRepo struct {
	groups     map[string]models.CommunityGroup
	membership map[uint][]string
}

func (r *fakeCommunityRepo) ListGroups() ([]models.CommunityGroup, error) {
	var out []models.CommunityGroup
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeCommunityRepo) GetGroup(id string) (*models.CommunityGroup, error) {
	if g, ok := r.groups[id]; ok {
		return &g, nil
	}
	return nil, repositories.ErrGroupNotFound
}

func (r *fakeCommunityRepo) MemberGroupIDs(userID uint) ([]string, error) {
	return r.membership[userID], nil
}

func (r *fakeCommunityRepo) ToggleMembership(string, uint) (bool, int, error) {
	return false, 0, nil
}

func (r *fakeCommunityRepo) ListPosts(string) ([]models.CommunityPost, error) {
	return nil, nil
}

type fixedRanker struct{ rank int }

func (f fixedRanker) Rank(uint) (int, error) { return f.rank, nil }

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func setup(t *testing.T) Service {
	t.Helper()
	complaints := repositories.NewMemoryComplaintRepository()
	entries := []models.Complaint{
		{ID: "CMP001", Title: "Water Supply Complaint", SubmitterID: 1, Status: models.StatusInProgress, CreatedAt: day(15)},
		{ID: "CMP002", Title: "Transportation Service Query", SubmitterID: 1, Status: models.StatusResolved, CreatedAt: day(10)},
		{ID: "CMP003", Title: "Someone else's issue", SubmitterID: 2, Status: models.StatusPending, CreatedAt: day(14)},
	}
	for i := range entries {
		require.NoError(t, complaints.Create(&entries[i]))
	}

	community := &fakeCommunityRepo{
		groups: map[string]models.CommunityGroup{
			"CG001": {ID: "CG001", Name: "Water Conservation Group", LastActivity: day(12)},
		},
		membership: map[uint][]string{1: {"CG001"}},
	}

	return NewService(complaints, community, fixedRanker{rank: 1})
}

func TestStats(t *testing.T) {
	svc := setup(t)

	stats, err := svc.Stats(1)
	require.NoError(t, err)

	assert.Equal(t, 80, stats.ServicesAvailable)
	assert.Equal(t, int64(1), stats.ActiveComplaints, "resolved complaints are not active")
	assert.Equal(t, int64(1), stats.CommunityGroups)
	assert.Equal(t, 1, stats.LeaderboardRank)
}

func TestRecentActivity(t *testing.T) {
	svc := setup(t)

	activities, err := svc.RecentActivity(1)
	require.NoError(t, err)
	require.Len(t, activities, 3)

	// Newest first, complaints and group joins interleaved by date.
	assert.Equal(t, "Water Supply Complaint", activities[0].Name)
	assert.Equal(t, "complaint", activities[0].Type)
	assert.Equal(t, "Joined Water Conservation Group", activities[1].Name)
	assert.Equal(t, "community", activities[1].Type)
	assert.Equal(t, "Transportation Service Query", activities[2].Name)

	// Another viewer's feed excludes user 1's entries.
	others, err := svc.RecentActivity(2)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "Someone else's issue", others[0].Name)
}
