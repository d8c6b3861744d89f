package sqlite

import (
	"context"
	"testing"

	"github.com/hongminglow/shift-assign/internal/models"
	"github.com/hongminglow/shift-assign/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemberStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	list, err := s.ListMembers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	jane, err := s.CreateMember(ctx, models.Member{Name: "Jane Doe", Phone: "555-0100", AssignedHours: 40, Status: models.StatusActive})
	require.NoError(t, err)
	assert.NotZero(t, jane.ID)

	sam, err := s.CreateMember(ctx, models.Member{Name: "Sam", Phone: "555-0101", AssignedHours: 32, LeaveHours: 8, Status: models.StatusRedFlag})
	require.NoError(t, err)
	assert.Greater(t, sam.ID, jane.ID)

	list, err = s.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Jane Doe", list[0].Name)
	assert.Equal(t, models.StatusRedFlag, list[1].Status)
	assert.Equal(t, 8.0, list[1].LeaveHours)

	require.NoError(t, s.DeleteMember(ctx, jane.ID))
	assert.ErrorIs(t, s.DeleteMember(ctx, jane.ID), storage.ErrNotFound)

	list, err = s.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sam.ID, list[0].ID)
}

func TestCreateMemberRejectsUnknownStatus(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateMember(context.Background(), models.Member{Name: "x", Phone: "y", Status: "Away"})
	assert.Error(t, err)
}
