package complaint

import (
	"testing"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedNotification struct {
	userID uint
	title  string
	kind   string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(userID uint, title, message, kind string) error {
	f.sent = append(f.sent, recordedNotification{userID: userID, title: title, kind: kind})
	return nil
}

func newTestService() (Service, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewService(repositories.NewMemoryComplaintRepository(), notifier), notifier
}

func submit(t *testing.T, svc Service, userID uint, title string) *models.Complaint {
	t.Helper()
	c, err := svc.Create(&models.NewComplaintInput{
		ServiceType: "water-sewerage",
		Location:    "sector-2",
		Title:       title,
		Description: "No water supply for three days.",
	}, &models.UserClaims{UserID: userID}, "Akshita")
	require.NoError(t, err)
	return c
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()

	c := submit(t, svc, 1, "Water Supply Issue")

	assert.Regexp(t, `^CMP\d+$`, c.ID)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, models.PriorityMedium, c.Priority, "missing priority defaults to medium")
	assert.Equal(t, "Water & Sewerage", c.Category, "stored as display label")
	assert.Equal(t, "Sector 2", c.Location)
	assert.Equal(t, 0, c.Votes)
	assert.Equal(t, "Akshita", c.SubmittedBy)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	svc, _ := newTestService()

	// Rapid submissions land within the same millisecond; every identifier
	// must still be distinct since it is the primary key.
	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 50; i++ {
		c := submit(t, svc, 1, "Water Supply Issue")
		assert.Regexp(t, `^CMP\d+$`, c.ID)
		assert.False(t, seen[c.ID], "duplicate identifier %s", c.ID)
		seen[c.ID] = true
		if prev != "" {
			assert.Greater(t, c.ID, prev, "identifiers must be monotonic")
		}
		prev = c.ID
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(&models.NewComplaintInput{
		Location:    "sector-2",
		Title:       "x",
		Description: "y",
	}, &models.UserClaims{UserID: 1}, "Akshita")
	assert.ErrorIs(t, err, validation.ErrServiceTypeRequired)

	views, err := svc.List(ListFilter{}, 1)
	require.NoError(t, err)
	assert.Empty(t, views, "nothing stored on validation failure")
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService()

	first := submit(t, svc, 1, "First")
	second := submit(t, svc, 1, "Second")

	views, err := svc.List(ListFilter{}, 1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID, "newest complaint leads the list")
	assert.Equal(t, first.ID, views[1].ID)
	assert.False(t, views[0].HasVoted)
}

func TestListMineFilter(t *testing.T) {
	svc, _ := newTestService()

	mine := submit(t, svc, 1, "Mine")
	submit(t, svc, 2, "Someone else's")

	views, err := svc.List(ListFilter{Mine: true}, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, mine.ID, views[0].ID)
}

func TestToggleVote(t *testing.T) {
	svc, _ := newTestService()
	c := submit(t, svc, 1, "Potholes")

	t.Run("vote on", func(t *testing.T) {
		view, err := svc.ToggleVote(2, c.ID)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.True(t, view.HasVoted)
		assert.Equal(t, 1, view.Votes)
	})

	t.Run("vote off restores the original state", func(t *testing.T) {
		view, err := svc.ToggleVote(2, c.ID)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.False(t, view.HasVoted)
		assert.Equal(t, 0, view.Votes)
	})

	t.Run("votes from different users accumulate", func(t *testing.T) {
		_, err := svc.ToggleVote(2, c.ID)
		require.NoError(t, err)
		view, err := svc.ToggleVote(3, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, view.Votes)
	})
}

func TestToggleVoteMissingComplaint(t *testing.T) {
	svc, _ := newTestService()

	view, err := svc.ToggleVote(1, "CMP000")
	assert.NoError(t, err, "a vanished complaint is a no-op, not an error")
	assert.Nil(t, view)
}

func TestUpdateStatus(t *testing.T) {
	svc, notifier := newTestService()
	c := submit(t, svc, 7, "Garbage backlog")

	require.NoError(t, svc.UpdateStatus(c.ID, models.StatusInProgress))
	require.NoError(t, svc.UpdateStatus(c.ID, models.StatusResolved))

	view, err := svc.Get(c.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, view.Status)

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, uint(7), notifier.sent[0].userID)
	assert.Equal(t, "Complaint Status Update", notifier.sent[0].title)
}

func TestUpdateStatusMonotonic(t *testing.T) {
	svc, _ := newTestService()
	c := submit(t, svc, 1, "Street light")

	require.NoError(t, svc.UpdateStatus(c.ID, models.StatusResolved))

	err := svc.UpdateStatus(c.ID, models.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(c.ID, models.StatusInProgress)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Re-applying the current status is allowed.
	assert.NoError(t, svc.UpdateStatus(c.ID, models.StatusResolved))
}

func TestUpdateStatusUnknown(t *testing.T) {
	svc, _ := newTestService()
	c := submit(t, svc, 1, "Street light")

	assert.ErrorIs(t, svc.UpdateStatus(c.ID, "Escalated"), ErrUnknownStatus)
	assert.ErrorIs(t, svc.UpdateStatus("CMP000", models.StatusResolved), repositories.ErrComplaintNotFound)
}

func TestRespond(t *testing.T) {
	svc, notifier := newTestService()
	c := submit(t, svc, 4, "Power cuts")

	require.NoError(t, svc.Respond(c.ID, "Crew dispatched."))

	view, err := svc.Get(c.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, "Crew dispatched.", view.Response)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, uint(4), notifier.sent[0].userID)
	assert.Equal(t, "Official Response", notifier.sent[0].title)
}
