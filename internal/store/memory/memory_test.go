package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-task-api/internal/model"
	"go-task-api/internal/store"
)

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, model.User{ID: "u1", Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, model.User{ID: "u2", Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Case differences still count as the same username.
	_, err = s.CreateUser(ctx, model.User{ID: "u3", Username: "Alice", PasswordHash: "h3"})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestGetUser(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, model.User{ID: "u1", Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	byName, err := s.GetUserByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := s.GetUserByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = s.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTasks_OwnershipAndSearch(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	mustCreateTask(t, s, model.Task{ID: "t1", OwnerID: "a", Title: "Buy groceries"})
	mustCreateTask(t, s, model.Task{ID: "t2", OwnerID: "a", Title: "Call mom"})
	mustCreateTask(t, s, model.Task{ID: "t3", OwnerID: "a", Title: "Dentist", Description: "reschedule GROCERY pickup"})
	mustCreateTask(t, s, model.Task{ID: "t4", OwnerID: "b", Title: "Buy groceries too"})

	all, err := s.ListTasks(ctx, "a", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// Insertion order.
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, "t2", all[1].ID)

	// Case-insensitive substring over title or description.
	matched, err := s.ListTasks(ctx, "a", "groc")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "t1", matched[0].ID)
	assert.Equal(t, "t3", matched[1].ID)

	// Owner b never sees a's tasks and vice versa.
	other, err := s.ListTasks(ctx, "b", "groc")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "t4", other[0].ID)
}

func TestUpdateTask(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	mustCreateTask(t, s, model.Task{
		ID: "t1", OwnerID: "a", Title: "Original", Description: "keep me", Priority: model.PriorityMedium,
	})

	completed := true
	updated, err := s.UpdateTask(ctx, "t1", "a", model.TaskUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "keep me", updated.Description)

	// Wrong owner is indistinguishable from a missing task.
	_, err = s.UpdateTask(ctx, "t1", "b", model.TaskUpdate{Completed: &completed})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UpdateTask(ctx, "missing", "a", model.TaskUpdate{Completed: &completed})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	mustCreateTask(t, s, model.Task{ID: "t1", OwnerID: "a", Title: "Doomed"})

	assert.ErrorIs(t, s.DeleteTask(ctx, "t1", "b"), store.ErrNotFound)

	require.NoError(t, s.DeleteTask(ctx, "t1", "a"))
	assert.ErrorIs(t, s.DeleteTask(ctx, "t1", "a"), store.ErrNotFound)

	remaining, err := s.ListTasks(ctx, "a", "")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func mustCreateTask(t *testing.T, s *Store, task model.Task) {
	t.Helper()
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := s.CreateTask(context.Background(), task)
	require.NoError(t, err)
}
