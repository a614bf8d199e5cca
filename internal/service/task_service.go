package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-task-api/internal/model"
	"go-task-api/internal/store"
	"go-task-api/pkg/apierror"
)

type TaskService struct {
	tasks store.TaskStore
}

func NewTaskService(tasks store.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, ownerID string, req model.CreateTaskRequest) (model.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Task{}, apierror.BadRequest("title is required")
	}

	priority, ok := model.ParsePriority(req.Priority)
	if !ok {
		return model.Task{}, apierror.BadRequest("priority must be one of low, medium, high")
	}

	now := time.Now().UTC()
	task := model.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Deadline:    req.Deadline,
		Priority:    priority,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.tasks.CreateTask(ctx, task)
}

func (s *TaskService) List(ctx context.Context, ownerID string, search string) ([]model.Task, error) {
	return s.tasks.ListTasks(ctx, ownerID, search)
}

// Update applies only the fields present in the request body. Omitted
// fields keep their stored values; the source system's overwrite-with-empty
// behavior is intentionally not reproduced.
func (s *TaskService) Update(ctx context.Context, taskID string, ownerID string, req model.UpdateTaskRequest) (model.Task, error) {
	var upd model.TaskUpdate

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return model.Task{}, apierror.BadRequest("title cannot be empty")
		}
		upd.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		upd.Description = &description
	}
	if req.Deadline != nil {
		upd.Deadline = req.Deadline
	}
	if req.Priority != nil {
		priority, ok := model.ParsePriority(*req.Priority)
		if !ok {
			return model.Task{}, apierror.BadRequest("priority must be one of low, medium, high")
		}
		upd.Priority = &priority
	}
	if req.Completed != nil {
		upd.Completed = req.Completed
	}

	task, err := s.tasks.UpdateTask(ctx, taskID, ownerID, upd)
	if errors.Is(err, store.ErrNotFound) {
		return model.Task{}, apierror.NotFound("task not found")
	}
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, taskID string, ownerID string) error {
	err := s.tasks.DeleteTask(ctx, taskID, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return apierror.NotFound("task not found")
	}
	return err
}
