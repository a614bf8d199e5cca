package store

import (
	"context"
	"errors"

	"go-task-api/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type UserStore interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

// TaskStore scopes every lookup and mutation by owner. A task id that
// exists under a different owner behaves exactly like a missing id.
type TaskStore interface {
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
	ListTasks(ctx context.Context, ownerID string, search string) ([]model.Task, error)
	UpdateTask(ctx context.Context, taskID string, ownerID string, upd model.TaskUpdate) (model.Task, error)
	DeleteTask(ctx context.Context, taskID string, ownerID string) error
}

type Store interface {
	UserStore
	TaskStore
}
