package memory

import (
	"context"
	"strings"
	"time"

	"go-task-api/internal/model"
	"go-task-api/internal/store"
)

func (s *Store) CreateTask(_ context.Context, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[t.ID] = t
	s.taskOrder = append(s.taskOrder, t.ID)
	return t, nil
}

func (s *Store) ListTasks(_ context.Context, ownerID string, search string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))

	tasks := make([]model.Task, 0)
	for _, id := range s.taskOrder {
		t, ok := s.tasks[id]
		if !ok || t.OwnerID != ownerID {
			continue
		}
		if search != "" && !taskMatches(t, search) {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func taskMatches(t model.Task, loweredTerm string) bool {
	return strings.Contains(strings.ToLower(t.Title), loweredTerm) ||
		strings.Contains(strings.ToLower(t.Description), loweredTerm)
}

func (s *Store) UpdateTask(_ context.Context, taskID string, ownerID string, upd model.TaskUpdate) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return model.Task{}, store.ErrNotFound
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Deadline != nil {
		deadline := *upd.Deadline
		t.Deadline = &deadline
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	t.UpdatedAt = time.Now().UTC()

	s.tasks[taskID] = t
	return t, nil
}

func (s *Store) DeleteTask(_ context.Context, taskID string, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return store.ErrNotFound
	}

	delete(s.tasks, taskID)
	for i, id := range s.taskOrder {
		if id == taskID {
			s.taskOrder = append(s.taskOrder[:i], s.taskOrder[i+1:]...)
			break
		}
	}
	return nil
}
