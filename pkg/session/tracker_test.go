package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureGeneratesIDWhenEmpty(t *testing.T) {
	tracker := NewTracker()

	id := tracker.Ensure("", "alice")
	require.NotEmpty(t, id)

	s, err := tracker.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.UserID)
	assert.Empty(t, s.WorkflowIDs)
}

func TestEnsureIsIdempotent(t *testing.T) {
	tracker := NewTracker()

	id := tracker.Ensure("sess-1", "alice")
	assert.Equal(t, "sess-1", id)
	tracker.Attach("sess-1", "wf-1")

	// A second Ensure must not reset the session.
	tracker.Ensure("sess-1", "alice")
	s, err := tracker.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"wf-1"}, s.WorkflowIDs)
}

func TestAttachAccumulatesAndDeduplicates(t *testing.T) {
	tracker := NewTracker()
	tracker.Ensure("sess-1", "alice")

	tracker.Attach("sess-1", "wf-1")
	tracker.Attach("sess-1", "wf-2")
	tracker.Attach("sess-1", "wf-1")

	s, err := tracker.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"wf-1", "wf-2"}, s.WorkflowIDs)
}

func TestAttachCreatesSessionOnDemand(t *testing.T) {
	tracker := NewTracker()

	tracker.Attach("sess-2", "wf-9")

	s, err := tracker.Get("sess-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"wf-9"}, s.WorkflowIDs)
}

func TestListFiltersByUser(t *testing.T) {
	tracker := NewTracker()
	tracker.Ensure("sess-1", "alice")
	tracker.Ensure("sess-2", "bob")
	tracker.Ensure("sess-3", "alice")

	all := tracker.List("")
	assert.Len(t, all, 3)

	alices := tracker.List("alice")
	require.Len(t, alices, 2)
	for _, s := range alices {
		assert.Equal(t, "alice", s.UserID)
	}
}

func TestDelete(t *testing.T) {
	tracker := NewTracker()
	tracker.Ensure("sess-1", "alice")

	require.NoError(t, tracker.Delete("sess-1"))
	_, err := tracker.Get("sess-1")
	assert.Error(t, err)
	assert.Error(t, tracker.Delete("sess-1"))
}

func TestGetReturnsCopy(t *testing.T) {
	tracker := NewTracker()
	tracker.Attach("sess-1", "wf-1")

	s, err := tracker.Get("sess-1")
	require.NoError(t, err)
	s.WorkflowIDs[0] = "mutated"

	again, err := tracker.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"wf-1"}, again.WorkflowIDs)
}
